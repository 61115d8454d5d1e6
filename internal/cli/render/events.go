package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chronicleprotocol/ethutil/internal/domain"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how event records are written
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat validates an --output value
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatTable:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid output format %q (valid: json, yaml, table)", s)
	}
}

// EventsRenderer renders dumped contract events
type EventsRenderer struct {
	out    io.Writer
	format OutputFormat
	color  bool
}

// NewEventsRenderer creates a new events renderer
func NewEventsRenderer(out io.Writer, format OutputFormat, color bool) *EventsRenderer {
	return &EventsRenderer{
		out:    out,
		format: format,
		color:  color,
	}
}

// Render writes the events in the configured format
func (r *EventsRenderer) Render(result *usecase.DumpEventsResult) error {
	switch r.format {
	case FormatYAML:
		return r.renderYAML(result.Events)
	case FormatTable:
		return r.renderTable(result)
	default:
		return r.renderJSON(result.Events)
	}
}

// renderJSON writes the records as one JSON line
func (r *EventsRenderer) renderJSON(events []domain.EventRecord) error {
	if events == nil {
		events = []domain.EventRecord{}
	}
	enc := json.NewEncoder(r.out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(events); err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}
	return nil
}

func (r *EventsRenderer) renderYAML(events []domain.EventRecord) error {
	if events == nil {
		events = []domain.EventRecord{}
	}
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(events); err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}
	return enc.Close()
}

func (r *EventsRenderer) renderTable(result *usecase.DumpEventsResult) error {
	if len(result.Events) == 0 {
		_, err := color.New(color.FgYellow).Fprintf(r.out, "No events emitted by %s\n", result.Contract.Hex())
		return err
	}

	title := cases.Title(language.English)
	header := lo.Map([]string{"block", "tx", "log", "event", "values"}, func(h string, _ int) any {
		return title.String(h)
	})

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row(header))

	for _, ev := range result.Events {
		t.AppendRow(table.Row{
			ev.BlockNumber,
			shortHash(ev.TransactionHash),
			ev.LogIndex,
			r.eventName(ev),
			formatValues(ev.ReturnValues),
		})
	}

	t.Render()
	return nil
}

func (r *EventsRenderer) eventName(ev domain.EventRecord) string {
	if !ev.Decoded() {
		name := "(unknown)"
		if r.color {
			return color.New(color.Faint).Sprint(name)
		}
		return name
	}
	if r.color {
		return color.New(color.FgCyan, color.Bold).Sprint(ev.Event)
	}
	return ev.Event
}

// formatValues lists named return values as name=value, skipping the
// positional duplicates
func formatValues(values map[string]any) string {
	names := lo.Filter(lo.Keys(values), func(k string, _ int) bool {
		_, err := strconv.Atoi(k)
		return err != nil
	})
	sort.Strings(names)

	return strings.Join(lo.Map(names, func(k string, _ int) string {
		return fmt.Sprintf("%s=%v", k, values[k])
	}), " ")
}

func shortHash(h string) string {
	if len(h) <= 14 {
		return h
	}
	return h[:8] + "…" + h[len(h)-4:]
}

var _ Renderer[*usecase.DumpEventsResult] = (*EventsRenderer)(nil)
