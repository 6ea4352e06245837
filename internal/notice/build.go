package notice

// Build assembles a canonical record from loose front-end fields.
// The period is parsed only when it is a string. bodyLines is used as
// given when non-nil; callers are expected to normalize it first.
func Build(noticeNo, issuer string, period any, title string, bodyLines []string) Data {
	start, end := DatePlaceholder, DatePlaceholder
	if raw, ok := period.(string); ok {
		start, end = ParsePeriod(raw)
	}
	if title == "" {
		title = TitlePlaceholder
	}
	if issuer == "" {
		issuer = FooterPlaceholder
	}
	body := Lines{BodyPlaceholder}
	if bodyLines != nil {
		body = append(Lines{}, bodyLines...)
	}
	return Data{
		Title:    title,
		Label:    PeriodLabel,
		Start:    start,
		End:      end,
		NoticeNo: noticeNo,
		Body:     body,
		Footer:   issuer,
	}
}
