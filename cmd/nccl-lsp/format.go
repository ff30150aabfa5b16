package main

import (
	"bytes"
	"context"

	"github.com/nccl-format/go-nccl/encode"
	"github.com/nccl-format/go-nccl/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	root, err := parse.Parse([]byte(doc.content))
	if err != nil {
		// A document that doesn't parse gets no edits.
		return nil, nil
	}

	opts := []encode.EncodeOption{}
	if params.Options.InsertSpaces {
		if n := int(params.Options.TabSize); n > 0 {
			opts = append(opts, encode.EncodeUnit(n))
		}
	} else {
		opts = append(opts, encode.EncodeTabs())
	}

	var buf bytes.Buffer
	if err := encode.Encode(root, &buf, opts...); err != nil {
		return nil, nil
	}

	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// One edit replacing the whole document.
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
