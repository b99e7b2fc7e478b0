package reports

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f *Format) UnmarshalText(text []byte) error {
	switch Format(text) {
	case FormatText, FormatJSON, FormatYAML:
		*f = Format(text)
		return nil
	}
	return fmt.Errorf("unknown format: %s", text)
}

func Write(w io.Writer, format Format, reports ...Report) error {
	switch format {

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()

	case FormatText, "":
		for _, report := range reports {
			if _, err := fmt.Fprintln(w, textLine(report)); err != nil {
				return err
			}
		}
		return nil

	}
	return fmt.Errorf("unknown format: %s", format)
}

func textLine(r Report) string {
	fields := []string{
		"file=" + r.File,
		"mode=" + r.Mode,
		fmt.Sprintf("result=%d", r.Result),
	}
	if r.State != "" {
		fields = append(fields, "state="+r.State)
	}
	if r.Turns > 0 {
		fields = append(fields, fmt.Sprintf("turns=%d", r.Turns))
	}
	fields = append(fields, fmt.Sprintf("steps=%d", r.Steps))
	if len(r.Registers) > 0 {
		regs := lo.MapToSlice(r.Registers, func(name string, value int64) string {
			return fmt.Sprintf("%s:%d", name, value)
		})
		slices.Sort(regs)
		fields = append(fields, "registers="+strings.Join(regs, ","))
	}
	if r.Error != "" {
		fields = append(fields, fmt.Sprintf("error=%q", r.Error))
	}
	return strings.Join(fields, " ")
}
