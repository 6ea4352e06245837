package source

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"noticegen/internal/notice"
)

const promptFooterDefault = "발신처를 입력하세요 (예: 관리사무소장 [직인생략])"

// Prompt asks for the header fields one line at a time. Blank answers fall
// back to placeholders and the body is left as the placeholder line.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

type promptAnswers struct {
	Title, Start, End, NoticeNo, Footer string
}

func (a promptAnswers) data() notice.Data {
	or := func(v, def string) string {
		if v = strings.TrimSpace(v); v == "" {
			return def
		}
		return v
	}
	return notice.Data{
		Title:    or(a.Title, notice.TitlePlaceholder),
		Label:    notice.PeriodLabel,
		Start:    or(a.Start, notice.DatePlaceholder),
		End:      or(a.End, notice.DatePlaceholder),
		NoticeNo: strings.TrimSpace(a.NoticeNo),
		Body:     notice.Lines{notice.BodyPlaceholder},
		Footer:   or(a.Footer, promptFooterDefault),
	}
}

func (p Prompt) Collect(ctx context.Context) (Collected, error) {
	var a promptAnswers
	form := huh.NewForm(huh.NewGroup(
		huh.NewNote().Title("안내문 메타데이터를 입력하세요. (엔터 시 기본값 적용)"),
		huh.NewInput().Title("제목").Value(&a.Title),
		huh.NewInput().Title("게시 시작일(YYYY-MM-DD)").Value(&a.Start),
		huh.NewInput().Title("게시 종료일(YYYY-MM-DD)").Value(&a.End),
		huh.NewInput().Title("공고번호").Value(&a.NoticeNo),
		huh.NewInput().Title("푸터/발신처").Value(&a.Footer),
	)).WithAccessible(true)
	if p.In != nil {
		form = form.WithInput(p.In)
	}
	if p.Out != nil {
		form = form.WithOutput(p.Out)
	}

	if err := form.RunWithContext(ctx); err != nil {
		return Collected{}, interactiveErr(err)
	}
	return Collected{Data: a.data()}, nil
}

func interactiveErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return ErrCanceled
	}
	return err
}
