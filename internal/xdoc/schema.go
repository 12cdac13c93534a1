package xdoc

// Schema is the JSON Schema (Draft 2020-12) for the defectdoc JSON
// output. It documents the structure produced by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/defectdoc/report.schema.json",
  "title": "Defectdoc Report",
  "description": "Output schema for defectdoc generate --format=json",
  "type": "object",
  "required": ["schema_version", "report"],
  "properties": {
    "schema_version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "report": { "$ref": "#/$defs/Report" }
  },
  "$defs": {
    "Report": {
      "type": "object",
      "required": ["version", "files", "diagnostics"],
      "properties": {
        "version": {
          "type": "string",
          "description": "Analyzer version from the input document"
        },
        "threshold": {
          "type": "string",
          "description": "Display name of the configured threshold"
        },
        "effort": {
          "type": "string",
          "description": "Display name of the configured effort"
        },
        "files": {
          "type": "array",
          "items": { "$ref": "#/$defs/FileReport" }
        },
        "diagnostics": { "$ref": "#/$defs/Diagnostics" },
        "project": { "$ref": "#/$defs/Project" }
      }
    },
    "FileReport": {
      "type": "object",
      "required": ["classname"],
      "properties": {
        "classname": {
          "type": "string",
          "description": "Fully qualified name of the reported class"
        },
        "bugs": {
          "type": "array",
          "items": { "$ref": "#/$defs/BugEntry" }
        }
      }
    },
    "BugEntry": {
      "type": "object",
      "required": ["type", "priority", "category", "message", "line_number"],
      "properties": {
        "type": {
          "type": "string",
          "description": "Analyzer defect type code"
        },
        "priority": {
          "type": "string",
          "description": "Severity display name",
          "enum": ["High", "Normal", "Low", "Exp", "Ignore", "Invalid Priority"]
        },
        "category": { "type": "string" },
        "message": { "type": "string" },
        "line_number": {
          "type": "integer",
          "description": "Source line, -1 when absent or non-numeric"
        }
      }
    },
    "Diagnostics": {
      "type": "object",
      "properties": {
        "analysis_errors": {
          "type": "array",
          "items": { "type": "string" }
        },
        "missing_classes": {
          "type": "array",
          "items": { "type": "string" }
        }
      }
    },
    "Project": {
      "type": "object",
      "required": ["src_dirs"],
      "properties": {
        "src_dirs": {
          "type": "array",
          "items": { "type": "string" },
          "description": "Compile source roots followed by test source roots"
        }
      }
    }
  }
}`
