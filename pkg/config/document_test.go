package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleXML = `<?xml version="1.0"?>
<ServerSettings>
	<!-- Name of the server -->
	<property name="ServerName" value="MyServer"/>
	<property name="ServerPort" value="26900"/>
	<misc>
		<keep attr="1"/>
	</misc>
	<!-- this comment is not followed by a property -->
	<unknown/>
	<!-- a server-wide zombie horde rises every Nth day -->
	<property name="BloodMoonFrequency" value="7"/>
	<property name="CustomModSetting" value="on"/>
</ServerSettings>
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "serverconfig.xml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadParsesProperties(t *testing.T) {
	doc, err := Load(writeSample(t, sampleXML))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.Len() != 4 {
		t.Errorf("Expected 4 properties, got %d", doc.Len())
	}
	if doc.Repaired {
		t.Error("Valid file should not be marked repaired")
	}

	wantOrder := []string{"ServerName", "ServerPort", "BloodMoonFrequency", "CustomModSetting"}
	props := doc.Properties()
	for i, want := range wantOrder {
		if props[i].Name != want {
			t.Errorf("Property %d: expected %s, got %s", i, want, props[i].Name)
		}
		if props[i].Index != i {
			t.Errorf("Property %s: expected index %d, got %d", props[i].Name, i, props[i].Index)
		}
	}

	value, err := doc.Get("ServerName")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "MyServer" {
		t.Errorf("Expected value %q, got %q", "MyServer", value)
	}
}

func TestGetUnknownPropertyFails(t *testing.T) {
	doc, err := Load(writeSample(t, sampleXML))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, err = doc.Get("NoSuchProperty")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if notFound.Name != "NoSuchProperty" {
		t.Errorf("Expected error to carry the name, got %q", notFound.Name)
	}
}

func TestSetMarksDirtyAndNotifies(t *testing.T) {
	doc, err := Load(writeSample(t, sampleXML))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.IsDirty() {
		t.Error("Freshly loaded document should not be dirty")
	}

	var notified string
	doc.Watch("ServerName", func(value string) {
		notified = value
	})

	doc.Set("ServerName", "NewName")

	if !doc.IsDirty() {
		t.Error("Set should mark the document dirty")
	}
	if notified != "NewName" {
		t.Errorf("Watcher should receive the new value, got %q", notified)
	}
	if value, _ := doc.Get("ServerName"); value != "NewName" {
		t.Errorf("Expected %q, got %q", "NewName", value)
	}
}

func TestSetUnknownPropertyAppends(t *testing.T) {
	doc, err := Load(writeSample(t, sampleXML))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	doc.Set("BrandNewSetting", "42")

	props := doc.Properties()
	last := props[len(props)-1]
	if last.Name != "BrandNewSetting" || last.Value != "42" {
		t.Errorf("Expected new property appended last, got %+v", last)
	}

	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(string(out), `name="BrandNewSetting"`) {
		t.Error("Serialized output should contain the new property")
	}
}

func TestCommentAssociation(t *testing.T) {
	doc, err := Load(writeSample(t, sampleXML))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	desc, ok := doc.Description("ServerName")
	if !ok {
		t.Fatal("Expected a comment-derived description for ServerName")
	}
	if desc != "Name of the server" {
		t.Errorf("Expected %q, got %q", "Name of the server", desc)
	}

	// The comment before <unknown/> is orphaned and must not attach to the
	// property that follows later.
	desc, _ = doc.Description("BloodMoonFrequency")
	if desc != "a server-wide zombie horde rises every Nth day" {
		t.Errorf("Unexpected description for BloodMoonFrequency: %q", desc)
	}
	if _, ok := doc.Description("ServerPort"); ok {
		t.Error("ServerPort has no preceding comment and should have no description")
	}
}

func TestRoundTripPreservesStructure(t *testing.T) {
	path := writeSample(t, sampleXML)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		`name="ServerName" value="MyServer"`,
		"<misc>", `<keep attr="1"/>`, "<unknown/>",
		"<!-- Name of the server -->",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Serialized output missing %q", want)
		}
	}

	// Parsing the serialized output again yields the same properties in the
	// same order.
	path2 := writeSample(t, text)
	doc2, err := Load(path2)
	if err != nil {
		t.Fatalf("Load of serialized output failed: %v", err)
	}
	props, props2 := doc.Properties(), doc2.Properties()
	if len(props) != len(props2) {
		t.Fatalf("Round trip changed property count: %d != %d", len(props), len(props2))
	}
	for i := range props {
		if props[i].Name != props2[i].Name || props[i].Value != props2[i].Value {
			t.Errorf("Round trip changed property %d: %+v != %+v", i, props[i], props2[i])
		}
	}
}

func TestLoadSurfacesParseError(t *testing.T) {
	path := writeSample(t, "<<<this is not xml")

	_, err := Load(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
	if parseErr.Path != path {
		t.Errorf("Expected error to carry the path, got %q", parseErr.Path)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xml"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected IOError, got %v", err)
	}
}

func TestDuplicateNamesKeepFirst(t *testing.T) {
	content := `<?xml version="1.0"?>
<ServerSettings>
	<property name="ServerName" value="First"/>
	<property name="ServerName" value="Second"/>
</ServerSettings>
`
	doc, err := Load(writeSample(t, content))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.Len() != 1 {
		t.Errorf("Expected duplicate names collapsed to one entry, got %d", doc.Len())
	}
	if value, _ := doc.Get("ServerName"); value != "First" {
		t.Errorf("Expected first occurrence to win, got %q", value)
	}
}
