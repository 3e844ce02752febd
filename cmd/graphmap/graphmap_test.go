package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/graphmap/gomap"
	"github.com/signadot/graphmap/graph"

	"github.com/scott-cotton/cli"
)

func TestWriteStats(t *testing.T) {
	cfg := &MainConfig{}
	cfg.init()
	_, err := gomap.DecodeJSON([]byte(`{"comments":{"count":0},"subject":"s"}`), graph.NoteTable, cfg.decodeOpts()...)
	cfg.rec.ObserveDecode("Note", err)

	buf := bytes.NewBuffer(nil)
	if err := writeStats(cfg, buf); err != nil {
		t.Fatal(err)
	}
	want := `graphmap_decodes_total{result="ok",type="Note"} 1
graphmap_field_mismatches_total{attr="comments",tolerated="true",type="Note"} 1
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestLookupKind(t *testing.T) {
	if _, err := lookupKind(""); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
	if _, err := lookupKind("Album"); !errors.Is(err, graph.ErrUnknownKind) {
		t.Errorf("expected unknown kind, got %v", err)
	}
	k, err := lookupKind("Note")
	if err != nil || k.Name() != "Note" {
		t.Errorf("lookupKind(Note) = %v, %v", k, err)
	}
}
