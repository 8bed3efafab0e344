package openapi

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwiz/pkg/forms"
)

const fleetDoc = `{
  "openapi": "3.0.0",
  "info": {"title": "Fleet", "version": "1.0.0"},
  "paths": {
    "/devices": {
      "get": {
        "operationId": "listDevices",
        "responses": {"200": {"description": "ok"}}
      },
      "post": {
        "operationId": "enrollDevice",
        "summary": "Enroll a device",
        "description": "<p>Registers &amp; activates devices.</p>",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["hostname", "port", "tls"],
                "properties": {
                  "hostname": {"type": "string", "title": "Hostname", "maxLength": 64, "description": "<b>Primary</b> name"},
                  "port": {"type": "integer", "minimum": 1, "maximum": 65535},
                  "tls": {"type": "boolean", "default": true},
                  "region": {"type": "string", "enum": ["eu-west", "us-east"]},
                  "features": {
                    "type": "array",
                    "items": {"type": "string", "enum": ["metrics", "tracing"]},
                    "x-formwiz": {"requires": {"question": "tls", "equals": true}}
                  },
                  "channel": {"type": "string", "enum": ["stable", 3]},
                  "labels": {"type": "object"},
                  "notes": {"type": "array", "items": {"type": "string"}},
                  "score": {"type": "number"}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  }
}`

func TestBuildEnrollForm(t *testing.T) {
	doc, err := Load([]byte(fleetDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	form, report, err := Build(doc, "enrollDevice")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if form.Title() != "Enroll a device" {
		t.Errorf("title = %q", form.Title())
	}
	if form.Description() != "Registers & activates devices." {
		t.Errorf("description = %q", form.Description())
	}

	var ids []string
	for _, q := range form.Questions() {
		ids = append(ids, q.ID())
	}
	wantIDs := []string{"hostname", "port", "tls", "features", "region"}
	if diff := cmp.Diff(wantIDs, ids); diff != "" {
		t.Fatalf("question order mismatch (-want +got):\n%s", diff)
	}

	questions := form.Questions()

	hostname := questions[0].(*forms.Text)
	if hostname.Title() != "Hostname" {
		t.Errorf("hostname title = %q", hostname.Title())
	}
	if hostname.Limit() != 64 {
		t.Errorf("hostname limit = %d", hostname.Limit())
	}
	if hostname.Description() != "Primary name" {
		t.Errorf("hostname description = %q", hostname.Description())
	}

	port := questions[1].(*forms.Integer)
	if port.Min() != 1 || port.Max() != 65535 {
		t.Errorf("port bounds = %d..%d", port.Min(), port.Max())
	}

	tls := questions[2].(*forms.Boolean)
	if !tls.Value() {
		t.Error("tls should default to true")
	}

	features := questions[3].(*forms.Checkboxes)
	if diff := cmp.Diff([]string{"metrics", "tracing"}, features.Choices()); diff != "" {
		t.Errorf("features choices mismatch (-want +got):\n%s", diff)
	}
	refID, want, hasReq := features.Requirement()
	if !hasReq || refID != "tls" || want != true {
		t.Errorf("features requirement = (%q, %v, %v)", refID, want, hasReq)
	}

	region := questions[4].(*forms.Choice)
	if diff := cmp.Diff([]string{"eu-west", "us-east"}, region.Choices()); diff != "" {
		t.Errorf("region choices mismatch (-want +got):\n%s", diff)
	}

	if report.OperationID != "enrollDevice" {
		t.Errorf("report operation = %q", report.OperationID)
	}
	wantSkipped := []SkippedProperty{
		{Name: "channel", Reason: "enum values must be strings"},
		{Name: "labels", Reason: `unsupported type "object"`},
		{Name: "notes", Reason: "array items are not an enum"},
		{Name: "score", Reason: `unsupported type "number"`},
	}
	if diff := cmp.Diff(wantSkipped, report.Skipped); diff != "" {
		t.Fatalf("skipped properties mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCallerOptions(t *testing.T) {
	doc, err := Load([]byte(fleetDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	form, _, err := Build(doc, "enrollDevice", forms.WithAccent("#7aa2f7"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if form.Accent() != "#7aa2f7" {
		t.Errorf("accent = %q", form.Accent())
	}
}

func TestBuildUnknownOperation(t *testing.T) {
	doc, err := Load([]byte(fleetDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, _, err = Build(doc, "nope")
	if !errors.Is(err, ErrOperationNotFound) {
		t.Fatalf("err = %v, want ErrOperationNotFound", err)
	}
	if !strings.Contains(err.Error(), `"nope"`) {
		t.Fatalf("error %q does not name the operation", err)
	}
}

func TestBuildWithoutRequestBody(t *testing.T) {
	doc, err := Load([]byte(fleetDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, _, err = Build(doc, "listDevices")
	if !errors.Is(err, ErrNoRequestBody) {
		t.Fatalf("err = %v, want ErrNoRequestBody", err)
	}
}

func TestBuildRejectsForwardRequires(t *testing.T) {
	const doc = `{
  "openapi": "3.0.0",
  "info": {"title": "Forward", "version": "1.0.0"},
  "paths": {
    "/things": {
      "post": {
        "operationId": "createThing",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "alpha": {"type": "boolean", "x-formwiz": {"requires": {"question": "zulu", "equals": true}}},
                  "zulu": {"type": "boolean"}
                }
              }
            }
          }
        },
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

	parsed, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, _, err = Build(parsed, "createThing")
	if err == nil || !strings.Contains(err.Error(), `requires "zulu" which is not asked before it`) {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildTitleFallsBackToOperationID(t *testing.T) {
	const doc = `{
  "openapi": "3.0.0",
  "info": {"title": "Notes", "version": "1.0.0"},
  "paths": {
    "/notes": {
      "post": {
        "operationId": "createNote",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {"body": {"type": "string"}}
              }
            }
          }
        },
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

	parsed, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	form, _, err := Build(parsed, "createNote")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if form.Title() != "createNote" {
		t.Errorf("title = %q", form.Title())
	}
}

func TestLoadRejectsMalformedDocuments(t *testing.T) {
	if _, err := Load([]byte("{")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.json")
	if err := os.WriteFile(path, []byte(fleetDoc), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.Info == nil || doc.Info.Title != "Fleet" {
		t.Errorf("unexpected document info: %+v", doc.Info)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected a read error")
	}
}
