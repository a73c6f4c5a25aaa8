// Package inspect provides the view and tokens commands, which show
// the structure of an input instead of its payload.
package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avaropoint/rtfex/formats"
	_ "github.com/avaropoint/rtfex/formats/compressed"
	_ "github.com/avaropoint/rtfex/formats/rtf"
	_ "github.com/avaropoint/rtfex/formats/tnef"
	"github.com/avaropoint/rtfex/internal/cmd/cmdutil"
	"github.com/avaropoint/rtfex/internal/view"
	"github.com/avaropoint/rtfex/parsers/rtfcp"
	"github.com/avaropoint/rtfex/parsers/rtfex"
	"github.com/avaropoint/rtfex/parsers/tnef"
)

// summary is the JSON form of the view command.
type summary struct {
	File    string          `json:"file"`
	Size    int             `json:"size"`
	Format  string          `json:"format"`
	RTF     *rtfSummary     `json:"rtf,omitempty"`
	Message *messageSummary `json:"message,omitempty"`
}

type rtfSummary struct {
	Mode            string          `json:"mode"`
	DefaultCodepage int             `json:"default_codepage"`
	PayloadSize     int             `json:"payload_size"`
	Fonts           rtfex.FontTable `json:"fonts,omitempty"`
	Warnings        []string        `json:"warnings,omitempty"`
	Error           string          `json:"error,omitempty"`
}

type messageSummary struct {
	Subject      string              `json:"subject,omitempty"`
	From         string              `json:"from,omitempty"`
	FromEmail    string              `json:"from_email,omitempty"`
	To           string              `json:"to,omitempty"`
	Cc           string              `json:"cc,omitempty"`
	MessageClass string              `json:"message_class,omitempty"`
	Codepage     int                 `json:"codepage"`
	BodySize     int                 `json:"body_size,omitempty"`
	HTMLSize     int                 `json:"html_size,omitempty"`
	RTFSize      int                 `json:"rtf_size,omitempty"`
	PayloadMode  string              `json:"payload_mode,omitempty"`
	PayloadSize  int                 `json:"payload_size,omitempty"`
	Attachments  []attachmentSummary `json:"attachments,omitempty"`
	Properties   []propSummary       `json:"properties,omitempty"`
	Warnings     []string            `json:"warnings,omitempty"`
}

type attachmentSummary struct {
	Name      string          `json:"name"`
	Size      int             `json:"size"`
	Method    string          `json:"method"`
	MimeType  string          `json:"mime_type,omitempty"`
	ContentID string          `json:"content_id,omitempty"`
	Message   *messageSummary `json:"message,omitempty"`
}

type propSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int    `json:"size"`
}

// NewCmdView creates the view command.
func NewCmdView() *cobra.Command {
	var jsonOutput, props bool

	cmd := &cobra.Command{
		Use:   "view <file|->",
		Short: "Summarize an RTF, compressed RTF or TNEF file",
		Long: `View prints what a file holds without writing its payload: the container
format, the encapsulated payload type, the document codepage, the font
table and any warnings. For TNEF files it lists the message fields and
attachments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], jsonOutput, props)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the summary as JSON")
	cmd.Flags().BoolVar(&props, "props", false, "list the MAPI properties of TNEF messages")
	return cmd
}

func runView(cmd *cobra.Command, path string, jsonOutput, props bool) error {
	data, err := cmdutil.ReadFile(cmd, path)
	if err != nil {
		return err
	}
	name := filepath.Base(path)
	conv := formats.Detect(name, data)
	if conv == nil {
		return fmt.Errorf("unsupported file format: %s", name)
	}

	cfg, err := cmdutil.LoadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	logger := cmdutil.Logger(cmd)

	s := summary{File: name, Size: len(data), Format: conv.Name()}
	switch {
	case rtfcp.IsCompressed(data):
		raw, err := cmdutil.DecompressRTF(data, logger, name)
		if err != nil {
			return err
		}
		s.RTF = summarizeRTF(raw, opts)
	case bytes.HasPrefix(data, []byte(`{\rtf`)):
		s.RTF = summarizeRTF(data, opts)
	default:
		msg, err := tnef.Decode(data, tnef.Options{RTF: opts})
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		s.Message = summarizeMessage(msg, props)
	}

	r := cmdutil.Renderer(cmd, jsonOutput)
	if r.JSON() {
		return r.RenderJSON(s)
	}
	renderSummary(r, &s)
	return nil
}

func summarizeRTF(data []byte, opts rtfex.Options) *rtfSummary {
	s := &rtfSummary{}
	opts.Warn = func(msg string) { s.Warnings = append(s.Warnings, msg) }
	opts.OutputMode = rtfex.OutputUTF8
	res, err := rtfex.Decode(data, opts)
	if err != nil {
		s.Mode = "none"
		if !errors.Is(err, rtfex.ErrNotEncapsulated) {
			s.Mode = "invalid"
		}
		s.Error = err.Error()
		return s
	}
	s.Mode = res.Mode.String()
	s.DefaultCodepage = res.DefaultCodepage
	s.PayloadSize = len(res.Bytes)
	s.Fonts = res.Fonts
	return s
}

func summarizeMessage(msg *tnef.Message, props bool) *messageSummary {
	s := &messageSummary{
		Subject:      msg.Subject,
		From:         msg.SenderName,
		FromEmail:    msg.SenderEmail,
		To:           msg.DisplayTo,
		Cc:           msg.DisplayCc,
		MessageClass: msg.MessageClass,
		Codepage:     msg.Codepage,
		BodySize:     len(msg.Body),
		HTMLSize:     len(msg.BodyHTML),
		RTFSize:      len(msg.BodyRTF),
		PayloadSize:  len(msg.Payload),
		Warnings:     msg.Warnings,
	}
	if len(msg.Payload) > 0 {
		s.PayloadMode = msg.PayloadMode.String()
	}
	if props {
		s.Properties = summarizeProps(msg.Attributes)
	}
	for _, att := range msg.Attachments {
		a := attachmentSummary{
			Name:      att.Filename(),
			Size:      len(att.Data),
			Method:    tnef.MethodName(att.Method),
			MimeType:  att.MimeType,
			ContentID: att.ContentID,
		}
		if att.EmbeddedMsg != nil {
			a.Message = summarizeMessage(att.EmbeddedMsg, props)
		}
		s.Attachments = append(s.Attachments, a)
	}
	return s
}

func summarizeProps(attrs []tnef.MAPIAttr) []propSummary {
	out := make([]propSummary, 0, len(attrs))
	for _, a := range attrs {
		p := propSummary{
			ID:   fmt.Sprintf("0x%04X", a.ID),
			Name: tnef.PropertyName(a.ID),
			Type: tnef.TypeName(a.Type),
		}
		if a.Named {
			p.Name = "(named)"
		}
		for _, v := range a.Values {
			p.Size += len(v)
		}
		out = append(out, p)
	}
	return out
}

func renderSummary(r *view.Renderer, s *summary) {
	r.RenderKeyValue("", "File", fmt.Sprintf("%s (%s)", s.File, view.Size(s.Size)))
	r.RenderKeyValue("", "Format", s.Format)
	r.RenderDivider("")
	if s.RTF != nil {
		renderRTF(r, s.RTF)
	}
	if s.Message != nil {
		renderMessage(r, s.Message, "")
	}
}

func renderRTF(r *view.Renderer, s *rtfSummary) {
	r.RenderKeyValue("", "Payload", s.Mode)
	if s.Error != "" {
		r.Error(s.Error)
		return
	}
	r.RenderKeyValue("", "Codepage", strconv.Itoa(s.DefaultCodepage))
	r.RenderKeyValue("", "Size", view.Size(s.PayloadSize))
	if len(s.Fonts) > 0 {
		r.RenderText("")
		r.RenderTable("", []string{"FONT", "CODEPAGE", "FAMILY", "NAME"}, fontRows(s.Fonts))
	}
	renderWarnings(r, s.Warnings)
}

func fontRows(fonts rtfex.FontTable) [][]string {
	ids := make([]string, 0, len(fonts))
	for id := range fonts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		f := fonts[id]
		cpg := "-"
		if c := f.Codepage(); c != 0 {
			cpg = strconv.Itoa(c)
		}
		rows = append(rows, []string{`\f` + id, cpg, f.FontFamily, f.FontName})
	}
	return rows
}

func renderMessage(r *view.Renderer, s *messageSummary, indent string) {
	r.RenderKeyValue(indent, "Subject", s.Subject)
	r.RenderKeyValue(indent, "From", s.From)
	r.RenderKeyValue(indent, "From Email", s.FromEmail)
	r.RenderKeyValue(indent, "To", s.To)
	r.RenderKeyValue(indent, "CC", s.Cc)
	r.RenderKeyValue(indent, "Class", s.MessageClass)
	if s.BodySize > 0 {
		r.RenderKeyValue(indent, "Body", "Plain text ("+view.Size(s.BodySize)+")")
	}
	if s.HTMLSize > 0 {
		r.RenderKeyValue(indent, "Body HTML", "Yes ("+view.Size(s.HTMLSize)+")")
	}
	if s.RTFSize > 0 {
		rtf := "Yes (" + view.Size(s.RTFSize) + ")"
		if s.PayloadMode != "" {
			rtf = fmt.Sprintf("Yes (%s, encapsulated %s: %s)", view.Size(s.RTFSize), s.PayloadMode, view.Size(s.PayloadSize))
		}
		r.RenderKeyValue(indent, "Body RTF", rtf)
	}
	if len(s.Properties) > 0 {
		rows := make([][]string, 0, len(s.Properties))
		for _, p := range s.Properties {
			rows = append(rows, []string{p.ID, p.Type, view.Size(p.Size), p.Name})
		}
		r.RenderTable(indent+"  ", []string{"ID", "TYPE", "SIZE", "NAME"}, rows)
	}
	renderWarnings(r, s.Warnings)

	if len(s.Attachments) == 0 {
		r.RenderKeyValue(indent, "Attachments", "None")
		return
	}
	r.RenderKeyValue(indent, "Attachments", fmt.Sprintf("%d item(s)", len(s.Attachments)))
	r.RenderDivider(indent)
	for i, a := range s.Attachments {
		r.RenderText(fmt.Sprintf("%s  %d. %-36s %10s  [%s]", indent, i+1, a.Name, view.Size(a.Size), a.Method))
		if a.Message != nil {
			r.RenderText(indent + "     └─ Embedded message:")
			renderMessage(r, a.Message, indent+"        ")
		}
	}
}

func renderWarnings(r *view.Renderer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	r.RenderText("")
	for _, w := range warnings {
		r.Warning(w)
	}
}
