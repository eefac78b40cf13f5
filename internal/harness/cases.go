package harness

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"voicecal/internal/model"
)

// DefaultCases are the three scripted utterances of the workflow smoke test.
func DefaultCases() []model.Case {
	return []model.Case{
		{
			Name:         "明天下午會議測試",
			Text:         "明天下午3點開會討論專案進度",
			ExpectedDate: "tomorrow",
			ExpectedTime: "15:00",
		},
		{
			Name:         "今天晚餐測試",
			Text:         "今天晚上7點和朋友聚餐",
			ExpectedDate: "today",
			ExpectedTime: "19:00",
		},
		{
			Name:         "下週面試測試",
			Text:         "下週一上午9點面試新員工",
			ExpectedDate: "next monday",
			ExpectedTime: "09:00",
		},
	}
}

// DefaultParseTexts are the texts of the parse-only smoke test.
func DefaultParseTexts() []string {
	return []string{
		"明天下午3點開會討論專案進度",
		"今天晚上7點和朋友聚餐",
		"下週一上午9點面試新員工",
		"3月15日下午2點醫生預約",
	}
}

// LoadCases reads a YAML list of cases. A case without a name is named
// after its position.
func LoadCases(path string) ([]model.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}
	return ParseCases(data)
}

// ParseCases decodes a YAML list of cases.
func ParseCases(data []byte) ([]model.Case, error) {
	var cases []model.Case
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cases); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCasesFile, err)
	}
	if len(cases) == 0 {
		return nil, ErrNoCases
	}
	for i := range cases {
		cases[i].Text = strings.TrimSpace(cases[i].Text)
		if cases[i].Text == "" {
			return nil, fmt.Errorf("%w: case %d", ErrEmptyCaseText, i+1)
		}
		if cases[i].Name == "" {
			cases[i].Name = fmt.Sprintf("case-%d", i+1)
		}
	}
	return cases, nil
}

// ReadTexts reads one text per line, skipping blank lines and # comments.
// Duplicates are kept; batch output is positional.
func ReadTexts(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var texts []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		texts = append(texts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return texts, nil
}
