// scripts/gcal-auth/main.go
//
// Run this once to authorize Google Calendar access and write token.json
// next to the credentials file, where `voicecal run` and `voicecal serve`
// look for it.
//
// Usage:
//   go run ./scripts/gcal-auth [google-credentials.json]

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"

	"voicecal/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := gcalendar.InstalledAppConfig(data)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("步驟 1: 在瀏覽器開啟以下網址並登入 Google 帳號:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("步驟 2: 貼上瀏覽器顯示的授權碼後按 Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	tokenPath := filepath.Join(filepath.Dir(credsPath), gcalendar.DefaultTokenFile)
	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		log.Fatal(err)
	}

	fmt.Println()
	fmt.Printf("✅ token.json 已儲存至: %s\n", tokenPath)
	fmt.Println("設定 google_calendar.credentials_path 後即可使用 Google Calendar:")
	fmt.Printf("  VOICECAL_GOOGLE_CALENDAR_CREDENTIALS_PATH=%s voicecal serve\n", credsPath)
}
