package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestLoadConfig(t *testing.T) {
	t.Run("FromTokens", func(t *testing.T) {
		conf, err := loadConfig([]string{
			"reference_name=logs",
			"format=text",
			"path=s3a://bucket/data/",
			"access_id=AKIA",
			"access_key=secret",
			"region=us-east-1",
			"skip_header=true",
		})
		if err != nil {
			t.Fatalf("loadConfig(): %v", err)
		}
		if conf.Path != "s3a://bucket/data/" {
			t.Errorf("path not populated: %+v", conf)
		}
		if conf.ReferenceName != "logs" {
			t.Errorf("embedded settings not populated: %+v", conf)
		}
		if !conf.SkipHeader {
			t.Errorf("bool token not converted: %+v", conf)
		}
	})

	t.Run("FromYAMLFile", func(t *testing.T) {
		dir := t.TempDir()
		confPath := filepath.Join(dir, "conf.yaml")
		content := strings.Join([]string{
			"reference_name: logs",
			"format: text",
			"path: s3a://bucket/data/",
			"access_id: AKIA",
			"access_key: secret",
			"region: us-east-1",
		}, "\n")
		if err := os.WriteFile(confPath, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		conf, err := loadConfig([]string{confPath})
		if err != nil {
			t.Fatalf("loadConfig(): %v", err)
		}
		if conf.Region != "us-east-1" {
			t.Errorf("region not populated: %+v", conf)
		}
		if conf.Format != "text" {
			t.Errorf("inlined settings not populated: %+v", conf)
		}
	})

	t.Run("MissingYAMLFile", func(t *testing.T) {
		if _, err := loadConfig([]string{"/does/not/exist.yaml"}); err == nil {
			t.Error("expected an error for a missing config file")
		}
	})
}

func TestRun(t *testing.T) {
	validTokens := []string{
		"reference_name=logs",
		"format=text",
		"path=s3a://bucket/data/",
		"access_id=AKIA",
		"access_key=secret",
		"region=us-east-1",
	}

	t.Run("ValidateValid", func(t *testing.T) {
		out := &bytes.Buffer{}
		if err := run(testLogger(), out, "validate", validTokens); err != nil {
			t.Errorf("expected valid config to pass validation, got error: %v", err)
		}
	})

	t.Run("ValidateInvalid", func(t *testing.T) {
		out := &bytes.Buffer{}
		tokens := []string{"reference_name=logs", "format=text", "path=http://bucket/", "region=us-east-1"}
		if err := run(testLogger(), out, "validate", tokens); err == nil {
			t.Error("expected config with missing credentials to fail validation")
		}
	})

	t.Run("Properties", func(t *testing.T) {
		out := &bytes.Buffer{}
		if err := run(testLogger(), out, "properties", validTokens); err != nil {
			t.Fatalf("run(properties): %v", err)
		}
		properties := map[string]string{}
		if err := json.Unmarshal(out.Bytes(), &properties); err != nil {
			t.Fatalf("output is not a JSON map: %v", err)
		}
		if properties["fs.s3a.access.key"] != "AKIA" {
			t.Errorf("access key not resolved: %+v", properties)
		}
		if properties["fs.s3a.secret.key"] != "****" {
			t.Errorf("secret key not redacted: %+v", properties)
		}
		if properties["fs.s3a.endpoint"] != "s3.us-east-1.amazonaws.com" {
			t.Errorf("endpoint not resolved: %+v", properties)
		}
	})

	t.Run("Schema", func(t *testing.T) {
		out := &bytes.Buffer{}
		if err := run(testLogger(), out, "schema", validTokens); err != nil {
			t.Fatalf("run(schema): %v", err)
		}
		resolved := struct {
			Fields []struct {
				Name string `json:"name"`
				Type string `json:"type"`
			} `json:"fields"`
		}{}
		if err := json.Unmarshal(out.Bytes(), &resolved); err != nil {
			t.Fatalf("output is not a schema: %v", err)
		}
		if len(resolved.Fields) != 2 || resolved.Fields[0].Name != "offset" || resolved.Fields[1].Name != "body" {
			t.Errorf("unexpected schema: %+v", resolved)
		}
	})

	t.Run("SchemaWithoutFullConfig", func(t *testing.T) {
		// The schema endpoint is a design-time call and must work on a
		// config that would not pass validation.
		out := &bytes.Buffer{}
		if err := run(testLogger(), out, "schema", []string{"format=blob"}); err != nil {
			t.Fatalf("run(schema): %v", err)
		}
		if !strings.Contains(out.String(), `"body"`) {
			t.Errorf("unexpected schema output: %s", out.String())
		}
	})

	t.Run("UnknownCommand", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := run(testLogger(), out, "frobnicate", validTokens)
		if err == nil {
			t.Error("expected unknown command to fail")
		}
	})
}

func TestRedactProperties(t *testing.T) {
	original := map[string]string{
		"fs.s3a.access.key": "AKIA",
		"fs.s3a.secret.key": "secret",
	}
	redacted := redactProperties(original)
	if redacted["fs.s3a.secret.key"] != "****" {
		t.Errorf("secret not redacted: %+v", redacted)
	}
	if original["fs.s3a.secret.key"] != "secret" {
		t.Errorf("original mutated: %+v", original)
	}
}
