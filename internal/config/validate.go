package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a trimmed copy of cfg with hard errors and
// soft warnings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.Server.Addr = strings.TrimSpace(out.Server.Addr)
	out.Output.Notice = strings.TrimSpace(out.Output.Notice)
	out.Output.Template = strings.TrimSpace(out.Output.Template)
	out.Draft.Endpoint = strings.TrimSpace(out.Draft.Endpoint)
	out.Draft.Model = strings.TrimSpace(out.Draft.Model)
	out.Log.Level = strings.ToLower(strings.TrimSpace(out.Log.Level))

	if err := Validate(out); err != nil {
		for _, line := range strings.Split(err.Error(), "\n- ")[1:] {
			res.addErr("%s", line)
		}
	}

	if out.Server.Addr == "0.0.0.0" || out.Server.Addr == "::" {
		res.addWarn("server.addr %q exposes the notice form on every network interface.", out.Server.Addr)
	}
	for _, name := range []string{out.Output.Notice, out.Output.Template} {
		if name != "" && !strings.HasSuffix(strings.ToLower(name), ".pptx") {
			res.addWarn("output file %q has no .pptx extension; office software may not open it.", name)
		}
	}
	if out.Draft.Enabled && out.Draft.Endpoint == "" {
		res.addErr("draft.endpoint is required when draft.enabled=true")
	}
	if out.Draft.Enabled && out.Draft.RequestsPerMinute == 0 {
		res.addWarn("draft.requests_per_minute is 0; drafting requests are not rate limited.")
	}

	return out, res
}
