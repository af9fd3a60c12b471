package languageServer

import (
	"context"

	"github.com/sourcegraph/jsonrpc2"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/isa"
)

func (s *session) hoverRequest(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as HoverParams
	decodedParams := TextDocumentPositionParams{}
	err := decodeParams(req, &decodedParams)
	if err != nil {
		replyInvalidParams(conn, req, err)
		return
	}

	// get document from documents map
	doc, ok := s.documentMap[decodedParams.TextDocument.URI]
	if !ok || doc.lastValidationResult == nil {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	text, ok := doc.lastValidationResult.EvaluateHover(decodedParams.Position)
	if !ok {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	// return HoverResponse
	conn.Reply(context.Background(), req.ID, Hover{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: text,
		},
	})
}

func (s *session) completionRequest(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := TextDocumentPositionParams{}
	err := decodeParams(req, &decodedParams)
	if err != nil {
		replyInvalidParams(conn, req, err)
		return
	}

	catalog := isa.Catalog(s.spec.Current())
	items := make([]CompletionItem, 0, len(catalog))
	for _, entry := range catalog {
		items = append(items, CompletionItem{
			Label:            entry.Mnemonic,
			Kind:             completionItemKindKeyword,
			Detail:           entry.Detail,
			InsertText:       entry.Snippet,
			InsertTextFormat: insertTextFormatSnippet,
		})
	}

	conn.Reply(context.Background(), req.ID, CompletionList{Items: items})
}
