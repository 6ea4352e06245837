package notice

import (
	"encoding/json"
	"fmt"
)

const (
	DatePlaceholder   = "YYYY-MM-DD"
	TitlePlaceholder  = "제목을 입력하세요"
	FooterPlaceholder = "발신처를 입력하세요 (예: 000아파트 관리사무소장 [직인생략])"
	BodyPlaceholder   = "(AI 본문 자리)"

	// PeriodLabel is the fixed caption of the date range field.
	PeriodLabel = "게시기간"
)

// Data is the canonical notice record consumed by the renderer.
type Data struct {
	Title    string `json:"title" yaml:"title"`
	Label    string `json:"label" yaml:"label"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	NoticeNo string `json:"notice_no" yaml:"notice_no"`
	Body     Lines  `json:"body" yaml:"body"`
	Footer   string `json:"footer" yaml:"footer"`
}

// UnmarshalJSON accepts numbers and booleans for the text fields, as data
// files often carry a bare notice number.
func (d *Data) UnmarshalJSON(b []byte) error {
	var raw struct {
		Title    looseString `json:"title"`
		Label    looseString `json:"label"`
		Start    looseString `json:"start"`
		End      looseString `json:"end"`
		NoticeNo looseString `json:"notice_no"`
		Body     Lines       `json:"body"`
		Footer   looseString `json:"footer"`
	}
	raw.Title, raw.Label = looseString(d.Title), looseString(d.Label)
	raw.Start, raw.End = looseString(d.Start), looseString(d.End)
	raw.NoticeNo, raw.Footer = looseString(d.NoticeNo), looseString(d.Footer)
	raw.Body = d.Body
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*d = Data{
		Title:    string(raw.Title),
		Label:    string(raw.Label),
		Start:    string(raw.Start),
		End:      string(raw.End),
		NoticeNo: string(raw.NoticeNo),
		Body:     raw.Body,
		Footer:   string(raw.Footer),
	}
	return nil
}

type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v.(type) {
	case nil, string, float64, bool:
		*s = looseString(stringify(v))
		return nil
	}
	return fmt.Errorf("expected a string, got %s", b)
}

// Resolve returns a copy with every empty field replaced by its placeholder.
// An empty non-nil body is kept; the renderer prints the placeholder for it.
func (d Data) Resolve() Data {
	out := d
	out.Label = PeriodLabel
	if out.Title == "" {
		out.Title = TitlePlaceholder
	}
	if out.Start == "" {
		out.Start = DatePlaceholder
	}
	if out.End == "" {
		out.End = DatePlaceholder
	}
	if out.Footer == "" {
		out.Footer = FooterPlaceholder
	}
	if out.Body == nil {
		out.Body = Lines{BodyPlaceholder}
	} else {
		out.Body = append(Lines(nil), out.Body...)
	}
	return out
}

// Template is the blank record used to produce a fill-in template document.
func Template(bodyLines []string) Data {
	body := Lines{"여기에 본문을 입력하세요."}
	if bodyLines != nil {
		body = append(Lines(nil), bodyLines...)
	}
	return Data{
		Title:    TitlePlaceholder,
		Label:    PeriodLabel,
		Start:    DatePlaceholder,
		End:      DatePlaceholder,
		NoticeNo: "공고번호를 입력하세요",
		Body:     body,
		Footer:   "발신처를 입력하세요 (예: 관리사무소장 [직인생략])",
	}
}

// Sample is the built-in example notice rendered when no input is given.
func Sample() Data {
	return Data{
		Title:    "반려견 목줄 착용안내",
		Label:    PeriodLabel,
		Start:    "2025-10-14",
		End:      "2025-10-21",
		NoticeNo: "제2025-001호",
		Body: Lines{
			"관리사무실에서 안내드립니다.",
			"공동주택 내에서는 반려견 목줄 착용이 의무사항입니다.",
			"다른 입주민의 안전과 불쾌감 방지를 위해 주의해주시기 바랍니다.",
			"1. 반려견은 외출 시 반드시 목줄을 착용해 주세요.",
			"2. 엘리베이터나 계단 이용 시에도 꼭 붙잡아 주시기 바랍니다.",
			"3. 어린이 놀이터, 공용공간에서의 출입은 자제해 주시기 바랍니다.",
			"4. 배설물은 즉시 수거해 주시고, 위생에도 신경 써 주세요.",
			"5. 지속적인 민원이 발생하면 관련 규정에 따라 조치가 있을 수 있습니다.",
			"사소해 보여도 이웃 간 불편함이 생길 수 있는 부분입니다.",
			"함께 사는 공간인 만큼, 기본적인 예의를 지켜주세요.",
			"협조해 주셔서 감사합니다.",
		},
		Footer: "인계수정아파트관리사무소장 관리사무소장 [직인생략]",
	}
}
