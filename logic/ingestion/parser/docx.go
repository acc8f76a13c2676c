package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/cloudwego/eino/schema"

	"szerzodes-gpt/errs"
)

const docxBody = "word/document.xml"

func parseDocx(filename string, r io.Reader) ([]*schema.Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, errs.Validation("invalid docx: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != docxBody {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		text, err := docxText(rc)
		if err != nil {
			return nil, errs.Validation("invalid docx body: %v", err)
		}
		return []*schema.Document{{ID: filename, Content: text}}, nil
	}
	return nil, errs.Validation("invalid docx: %s missing", docxBody)
}

// docxText 取 w:t 文本，段落换行，w:tab / w:br 分别转为制表符和换行
func docxText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br", "cr":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
