package output

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/vertti/dbpreflight/pkg/dbcheck"
)

type jsonReport struct {
	Passed   bool          `json:"passed"`
	ExitCode int           `json:"exit_code"`
	Failures int           `json:"failures"`
	Runtime  jsonRuntime   `json:"runtime"`
	Sections []jsonSection `json:"sections"`
}

type jsonRuntime struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Release   string `json:"release,omitempty"`
	Arch      string `json:"arch,omitempty"`
}

type jsonSection struct {
	Name     string     `json:"name"`
	Status   string     `json:"status"`
	Required bool       `json:"required"`
	Lines    []jsonLine `json:"lines"`
	Error    string     `json:"error,omitempty"`
}

type jsonLine struct {
	Mark string `json:"mark"`
	Text string `json:"text"`
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r dbcheck.Report) error {
	out := jsonReport{
		Passed:   r.Passed,
		ExitCode: r.ExitCode(),
		Failures: r.Failures(),
		Runtime: jsonRuntime{
			GoVersion: r.Runtime.GoVersion,
			OS:        r.Runtime.OS,
			Release:   r.Runtime.Release,
			Arch:      r.Runtime.Arch,
		},
		Sections: make([]jsonSection, 0, len(r.Sections)),
	}

	for _, s := range r.Sections {
		js := jsonSection{
			Name:     s.Name,
			Status:   string(s.Status),
			Required: s.Required,
			Lines:    make([]jsonLine, 0, len(s.Lines)),
		}
		if s.Err != nil {
			js.Error = s.Err.Error()
		}
		for _, l := range s.Lines {
			js.Lines = append(js.Lines, jsonLine{Mark: string(l.Mark), Text: l.Text})
		}
		out.Sections = append(out.Sections, js)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "encoding report")
	}
	return nil
}
