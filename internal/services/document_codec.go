package services

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	docxBodyMarker = "<w:p><w:r><w:t>RESUME_BODY</w:t></w:r></w:p>"
)

//go:embed assets/template.docx
var docxTemplate []byte

type GeneratedDocument struct {
	Data        []byte
	Format      DocumentFormat
	ContentType string
}

// Filename is the attachment name offered for download.
func (g *GeneratedDocument) Filename() string {
	return "refined_resume." + string(g.Format)
}

type DocumentCodec interface {
	Extract(data []byte, filename string) (string, DocumentFormat, error)
	Regenerate(text string, format DocumentFormat) (*GeneratedDocument, error)
}

type documentCodec struct{}

func NewDocumentCodec() DocumentCodec {
	return &documentCodec{}
}

// FormatFromFilename maps a file extension to a document format. Legacy .doc
// uploads are treated as docx.
func FormatFromFilename(filename string) (DocumentFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx", ".doc":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func (d *documentCodec) Extract(data []byte, filename string) (string, DocumentFormat, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return "", "", err
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = extractPDFText(data)
	case FormatDOCX:
		text, err = extractDocxText(data)
	}
	if err != nil {
		return "", format, &DecodeError{Format: format, Err: err}
	}

	return text, format, nil
}

func (d *documentCodec) Regenerate(text string, format DocumentFormat) (*GeneratedDocument, error) {
	switch format {
	case FormatDOCX:
		data, err := renderDocx(text)
		if err != nil {
			return nil, fmt.Errorf("failed to render docx: %w", err)
		}
		return &GeneratedDocument{Data: data, Format: FormatDOCX, ContentType: ContentTypeDOCX}, nil
	case FormatPDF:
		data, err := renderPDF(text)
		if err != nil {
			return nil, fmt.Errorf("failed to render pdf: %w", err)
		}
		return &GeneratedDocument{Data: data, Format: FormatPDF, ContentType: ContentTypePDF}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// extractPDFText joins per-page plain text with newlines.
func extractPDFText(data []byte) (string, error) {
	pages, err := readPDFPages(data)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n"), nil
}

// readPDFPages returns one entry per page. Pages without a text layer, or
// whose content stream cannot be read, yield "".
func readPDFPages(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPage := r.NumPage()
	pages = make([]string, 0, totalPage)
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText)
	}

	return pages, nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to read document body: %w", err)
	}

	return strings.Join(paragraphs, "\n"), nil
}

const (
	wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	markupCompatNS   = "http://schemas.openxmlformats.org/markup-compatibility/2006"
)

// skippedSubtree reports elements whose descendants never contribute to
// paragraph text: run and paragraph properties, drawings, text boxes and
// alternate content.
func skippedSubtree(name xml.Name) bool {
	switch name.Space {
	case wordprocessingNS:
		switch name.Local {
		case "pPr", "rPr", "drawing", "pict", "object", "txbxContent":
			return true
		}
	case markupCompatNS:
		return name.Local == "AlternateContent"
	}
	return false
}

// docxParagraphs walks word/document.xml and returns the text of every w:p,
// including paragraphs inside table cells.
func docxParagraphs(content string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		paragraphs []string
		current    strings.Builder
		skipDepth  int
		inPara     bool
		inRun      bool
		inText     bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skipDepth > 0 || skippedSubtree(t.Name) {
				skipDepth++
				continue
			}
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "p":
				inPara = true
				current.Reset()
			case "r":
				inRun = true
			case "t":
				inText = inRun
			case "tab":
				if inPara && inRun {
					current.WriteString("\t")
				}
			case "br", "cr":
				if inPara && inRun {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			if skipDepth > 0 {
				skipDepth--
				continue
			}
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "r":
				inRun = false
			case "p":
				if inPara {
					paragraphs = append(paragraphs, current.String())
				}
				inPara = false
			}
		case xml.CharData:
			if skipDepth == 0 && inPara && inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

func renderDocx(text string) ([]byte, error) {
	tmpl, err := docx.ReadDocxFromMemory(bytes.NewReader(docxTemplate), int64(len(docxTemplate)))
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	defer tmpl.Close()

	var body strings.Builder
	for _, line := range nonBlankLines(text) {
		body.WriteString(`<w:p><w:pPr><w:pStyle w:val="Normal"/></w:pPr><w:r><w:rPr><w:sz w:val="22"/></w:rPr><w:t xml:space="preserve">`)
		if err := xml.EscapeText(&body, []byte(line)); err != nil {
			return nil, fmt.Errorf("failed to escape paragraph: %w", err)
		}
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	if body.Len() == 0 {
		body.WriteString("<w:p/>")
	}

	doc := tmpl.Editable()
	doc.ReplaceRaw(docxBodyMarker, body.String(), 1)

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write docx: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPDF(text string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 11)

	tr := doc.UnicodeTranslatorFromDescriptor("")
	for _, line := range nonBlankLines(text) {
		doc.MultiCell(0, 5.5, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
