package source

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"noticegen/internal/notice"
)

const DefaultOutput = "notice_a4.pptx"

var errTitleRequired = errors.New("제목은 필수입니다.")

// Form is the full-screen input form. It asks for the output path and
// whether to open the document afterwards.
type Form struct{}

type formAnswers struct {
	NoticeNo string
	Issuer   string
	Period   string
	Title    string
	Output   string
	Open     bool
}

func defaultFormAnswers() formAnswers {
	return formAnswers{
		NoticeNo: "종합S(갑) 제2512-001호",
		Issuer:   "한공원 아파트",
		Period:   "2025.12.29 ~ 2026.01.05",
		Title:    "층간소음 안내문",
		Output:   DefaultOutput,
		Open:     true,
	}
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errTitleRequired
	}
	return nil
}

func (a formAnswers) collected() (Collected, error) {
	title := strings.TrimSpace(a.Title)
	if err := validateTitle(title); err != nil {
		return Collected{}, err
	}
	out := strings.TrimSpace(a.Output)
	if out == "" {
		out = DefaultOutput
	}
	if filepath.Ext(out) == "" {
		out += ".pptx"
	}
	d := notice.Build(
		strings.TrimSpace(a.NoticeNo),
		strings.TrimSpace(a.Issuer),
		strings.TrimSpace(a.Period),
		title,
		nil,
	)
	return Collected{Data: d, Output: out, Open: a.Open}, nil
}

func (Form) Collect(ctx context.Context) (Collected, error) {
	a := defaultFormAnswers()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("공고번호").Value(&a.NoticeNo),
			huh.NewInput().Title("아파트 이름").Value(&a.Issuer),
			huh.NewInput().Title("게시기간").Description("예: 2025.12.29 ~ 2026.01.05").Value(&a.Period),
			huh.NewInput().Title("제목").Value(&a.Title).Validate(validateTitle),
		).Title("안내문 메타데이터 입력"),
		huh.NewGroup(
			huh.NewInput().Title("저장할 파일").Value(&a.Output),
			huh.NewConfirm().Title("생성 후 바로 열기").Affirmative("예").Negative("아니오").Value(&a.Open),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		return Collected{}, interactiveErr(err)
	}
	return a.collected()
}
