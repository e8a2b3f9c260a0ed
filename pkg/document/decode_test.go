package document

import (
	stderrors "errors"
	"testing"

	scalserrors "github.com/go-scals/scals/pkg/errors"
	"github.com/go-scals/scals/pkg/state"
)

const sampleJSON = `{
  "schemaVersion": "1.2.0",
  "state": {"user": {"name": "Jane"}, "count": 5},
  "styles": {
    "card": {"cornerRadius": 12, "backgroundColor": "#ffffff"},
    "hero": {"inherits": "card", "height": 240}
  },
  "dataSources": {
    "greeting": {"type": "template", "template": "Hello, ${user.name}!"}
  },
  "actions": {
    "bump": {"type": "setState", "path": "count", "value": 6}
  },
  "root": {
    "kind": "stack",
    "axis": "vertical",
    "children": [
      {"kind": "text", "dataSource": "greeting", "style": "hero"},
      {"kind": "spacer"}
    ]
  }
}`

func TestDecodeJSON(t *testing.T) {
	doc, err := DecodeJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	name, ok := state.GetPath("user.name", doc.State)
	if !ok {
		t.Fatal("state seed missing user.name")
	}
	if s, _ := name.Str(); s != "Jane" {
		t.Errorf("user.name = %q", s)
	}
	count, _ := state.GetPath("count", doc.State)
	if count.Kind() != state.KindInt {
		t.Errorf("count decoded as %s, want int", count.Kind())
	}

	hero, ok := doc.Styles["hero"]
	if !ok {
		t.Fatal("missing style hero")
	}
	if hero.Inherits != "card" {
		t.Errorf("hero.Inherits = %q", hero.Inherits)
	}
	if hero.Height == nil || *hero.Height != 240 {
		t.Errorf("hero.Height = %v", hero.Height)
	}
	if hero.CornerRadius != nil {
		t.Error("absent property must stay nil, not zero")
	}

	if doc.Root.Kind != KindStack || len(doc.Root.Children) != 2 {
		t.Fatalf("root = %+v", doc.Root)
	}
	if doc.Root.Children[0].DataSource != "greeting" {
		t.Errorf("child data source = %q", doc.Root.Children[0].DataSource)
	}
}

func TestDecodeYAML_MatchesJSON(t *testing.T) {
	yamlDoc := []byte(`
schemaVersion: 1.2.0
state:
  count: 5
root:
  kind: stack
  children:
    - kind: text
      text: "Count: ${count}"
`)
	doc, err := DecodeYAML(yamlDoc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	count, _ := state.GetPath("count", doc.State)
	if count.Kind() != state.KindInt {
		t.Errorf("count decoded as %s, want int", count.Kind())
	}
	if doc.Root.Children[0].Text != "Count: ${count}" {
		t.Errorf("text = %q", doc.Root.Children[0].Text)
	}
}

func TestDecode_MissingRoot(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"state": {}}`))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	var se *scalserrors.Error
	if !stderrors.As(err, &se) || se.Kind != scalserrors.KindDecode {
		t.Errorf("err = %v, want decode kind", err)
	}
}

func TestDecode_StateSeedMustBeObject(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"state": [1, 2], "root": {"kind": "spacer"}}`))
	if err == nil {
		t.Fatal("expected error for non-object state seed")
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"", true},
		{"1.0.0", true},
		{"v1.4.2", true},
		{"1.9", true},
		{"2.0.0", false},
		{"v0.3.0", false},
		{"not-a-version", false},
	}
	for _, tt := range tests {
		err := CheckVersion(tt.version)
		if (err == nil) != tt.ok {
			t.Errorf("CheckVersion(%q) = %v, want ok=%v", tt.version, err, tt.ok)
		}
		if err != nil {
			var ve *scalserrors.VersionError
			if !stderrors.As(err, &ve) {
				t.Errorf("CheckVersion(%q) error lacks VersionError: %v", tt.version, err)
			}
		}
	}
}
