package harness

import (
	"fmt"
	"io"
	"strings"

	"voicecal/internal/model"
)

const (
	rule   = "=================================================="
	absent = "無"
)

// Printer renders reports in the console format of the workflow smoke test.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// PrintReport writes the header, every outcome and the summary.
func (p *Printer) PrintReport(r Report) {
	p.line("🚀 開始執行語音轉日曆工作流測試")
	p.line("🌐 目標 URL: %s", r.WebhookURL)
	p.line(rule)
	if r.Healthy {
		p.line("✅ 工作流實例連接正常")
	} else {
		p.line("⚠️ 無法驗證工作流連接，繼續測試...")
	}
	if r.AudioMocked {
		p.line("📁 測試音檔不存在，使用模擬數據")
	}

	for _, o := range r.Outcomes {
		p.PrintOutcome(o)
	}

	if r.Interrupted {
		p.line("\n⛔ 測試已中斷 (%d 個案例完成)", len(r.Outcomes))
	} else {
		p.line("\n🏁 所有測試執行完畢")
	}
	p.PrintSummary(r.Summary)
}

// PrintOutcome writes one case block.
func (p *Printer) PrintOutcome(o model.Outcome) {
	p.line("\n🧪 測試案例: %s", o.Case.Name)
	p.line("📝 測試語音: %q", o.Case.Text)

	switch o.Status {
	case model.StatusPassed, model.StatusMismatch:
		p.line("✅ 測試成功!")
		p.line("📅 事件ID: %s", o.EventID)
		p.line("📝 事件標題: %s", o.Summary)
		p.line("⏰ 開始時間: %s", o.StartTime)
		if o.Status == model.StatusPassed {
			p.line("✅ 日期時間解析正確")
		} else {
			p.line("⚠️ 日期時間解析可能有誤")
			p.line("   預期: %s %s", orAbsent(o.Expected.Date), orAbsent(o.Expected.Time))
			p.line("   實際: %s %s", orAbsent(o.Actual.Date), orAbsent(o.Actual.Time))
			if o.Detail != "" {
				p.line("   %s", o.Detail)
			}
		}
		if c := o.Calendar; c != nil {
			switch {
			case c.Error != "":
				p.line("⚠️ 日曆驗證失敗: %s", c.Error)
			case c.Matches:
				p.line("📆 日曆事件已確認: %s %s", c.Start.Date, c.Start.Time)
			default:
				p.line("⚠️ 日曆事件時間不符: %s %s", c.Start.Date, c.Start.Time)
			}
		}
	case model.StatusFailed:
		p.line("❌ 測試失敗")
		p.line("錯誤: %s", o.Message)
	default:
		p.line("❌ 測試執行錯誤")
		if o.HTTPStatus != 0 {
			p.line("HTTP狀態: %d", o.HTTPStatus)
			p.line("錯誤回應: %s", o.Detail)
		} else {
			p.line("錯誤詳情: %s", o.Detail)
		}
	}
}

// PrintSummary writes the closing checklist with counts.
func (p *Printer) PrintSummary(s Summary) {
	p.line("\n📋 測試報告總結:")
	p.line("- 通過 %d / 不符 %d / 失敗 %d / 錯誤 %d (共 %d)", s.Passed, s.Mismatch, s.Failed, s.Errored, s.Total)
	p.line("- 請檢查您的 Google Calendar 是否有新增的事件")
	p.line("- 確認事件的日期、時間和標題是否正確")
	p.line("- 如有錯誤，請檢查工作流的執行日誌")
}

// PrintParseResults writes the parse-only block for each text.
func (p *Printer) PrintParseResults(results []ParseResult) {
	p.line("\n🔍 測試文字解析邏輯")
	for _, r := range results {
		p.line("\n📝 測試文字: %q", r.Text)
		p.line("📅 日期匹配: %s", orAbsent(r.DateMarker))
		p.line("⏰ 時間匹配: %s", orAbsent(r.TimeMarker))
		p.line("📋 事件匹配: %s", orAbsent(r.EventMarker))

		var resolved []string
		if r.Date != nil {
			resolved = append(resolved, r.Date.String())
		}
		if r.Time != nil {
			resolved = append(resolved, r.Time.String())
		}
		if len(resolved) > 0 {
			p.line("🗓️ 解析結果: %s", strings.Join(resolved, " "))
		}
	}
}

func orAbsent(s string) string {
	if s == "" {
		return absent
	}
	return s
}
