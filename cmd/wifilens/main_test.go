package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/HerbHall/wifilens/internal/facts"
	"github.com/HerbHall/wifilens/internal/testutil"
	"github.com/HerbHall/wifilens/pkg/models"
)

func sampleFacts() models.NetworkFacts {
	return facts.Extract(facts.Input{
		Connection: testutil.NewConnection(),
		DHCP:       testutil.NewDHCP(),
	}, facts.English)
}

func TestPrintFacts_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := printFacts(&buf, "text", sampleFacts(), facts.English); err != nil {
		t.Fatalf("printFacts: %v", err)
	}
	if got, want := buf.String(), facts.RenderText(sampleFacts(), facts.English); got != want {
		t.Errorf("text output =\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintFacts_DefaultIsText(t *testing.T) {
	var buf bytes.Buffer
	if err := printFacts(&buf, "", sampleFacts(), facts.Spanish); err != nil {
		t.Fatalf("printFacts: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("SSID: home\n")) {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestPrintFacts_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printFacts(&buf, "json", sampleFacts(), facts.English); err != nil {
		t.Fatalf("printFacts: %v", err)
	}
	var got models.NetworkFacts
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Channel != 6 || got.IPAddress != "192.168.1.1" {
		t.Errorf("decoded facts = %+v", got)
	}
}

func TestPrintFacts_UnknownFormat(t *testing.T) {
	if err := printFacts(&bytes.Buffer{}, "xml", sampleFacts(), facts.English); err == nil {
		t.Error("printFacts(xml) error = nil, want error")
	}
}

func TestReport_RejectsFormatBeforeCollecting(t *testing.T) {
	src := &testutil.FakeSource{Connection: testutil.NewConnection(), DHCP: testutil.NewDHCP()}
	var buf bytes.Buffer

	err := report(context.Background(), &buf, facts.NewExtractor(src, nil), "xml", facts.English)
	if err == nil || !strings.Contains(err.Error(), `"xml"`) {
		t.Fatalf("report(xml) error = %v, want unsupported format", err)
	}
	if src.Calls() != 0 {
		t.Errorf("source read %d times for an invalid format, want 0", src.Calls())
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestReport(t *testing.T) {
	src := &testutil.FakeSource{Connection: testutil.NewConnection(), DHCP: testutil.NewDHCP()}
	var buf bytes.Buffer

	if err := report(context.Background(), &buf, facts.NewExtractor(src, nil), "json", facts.English); err != nil {
		t.Fatalf("report: %v", err)
	}
	var got models.NetworkFacts
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SSID != "home" || src.Calls() != 1 {
		t.Errorf("SSID = %q, calls = %d", got.SSID, src.Calls())
	}
}

func TestReport_CollectError(t *testing.T) {
	boom := errors.New("netlink exploded")
	src := &testutil.FakeSource{ConnectionErr: boom}

	err := report(context.Background(), &bytes.Buffer{}, facts.NewExtractor(src, nil), "text", facts.English)
	if !errors.Is(err, boom) {
		t.Errorf("report error = %v, want %v", err, boom)
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"", "text", "json"} {
		if err := validateFormat(f); err != nil {
			t.Errorf("validateFormat(%q) = %v", f, err)
		}
	}
	if err := validateFormat("yaml"); err == nil {
		t.Error("validateFormat(yaml) = nil, want error")
	}
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		l, err := newLogger(level, false)
		if err != nil {
			t.Errorf("newLogger(%q) error = %v", level, err)
			continue
		}
		_ = l.Sync()
	}
	if _, err := newLogger("chatty", true); err == nil {
		t.Error("newLogger(chatty) error = nil, want error")
	}
}
