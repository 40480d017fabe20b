// Package docs registers the OpenAPI description of the HTTP handlers,
// served by http-swagger under /swagger/. Keep it in step with the
// @-annotations in internal/api/handler.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Render the department, city and period form with the session's current selections",
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "pages"
                ],
                "summary": "Event form page",
                "responses": {
                    "200": {
                        "description": "HTML page",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/health": {
            "get": {
                "description": "Check the session database and report the number of stored sessions",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "Service healthy",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "Session store unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/download/{token}": {
            "get": {
                "description": "Return a file prepared by a previous export call. Tokens are single use and bound to the session.",
                "produces": [
                    "application/octet-stream"
                ],
                "tags": [
                    "export"
                ],
                "summary": "Fetch prepared export",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Download token",
                        "name": "token",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Exported file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Unknown or expired download",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/export/{format}": {
            "post": {
                "description": "Send the session's last table or annual report to the backend exporter. Plain posts stream the file back; htmx posts get an alert fragment on failure or an HX-Redirect to the download on success.",
                "produces": [
                    "application/octet-stream"
                ],
                "tags": [
                    "export"
                ],
                "summary": "Export last result",
                "parameters": [
                    {
                        "enum": [
                            "csv",
                            "xlsx"
                        ],
                        "type": "string",
                        "description": "Export format",
                        "name": "format",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Exported file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "No event data to export",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Unknown export format",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "502": {
                        "description": "Backend export failed",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/fragments/cities": {
            "get": {
                "description": "Store the selected department, drop any previous city and return the city select fragment",
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "fragments"
                ],
                "summary": "City options",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Department name",
                        "name": "departamento",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "City select fragment",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/period": {
            "post": {
                "description": "Switch the form to month or year mode and return the period fields fragment",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "fragments"
                ],
                "summary": "Select period mode",
                "parameters": [
                    {
                        "enum": [
                            "month",
                            "year"
                        ],
                        "type": "string",
                        "description": "Period mode",
                        "name": "mode",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Period fields fragment",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Unknown period mode",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/query": {
            "post": {
                "description": "Validate the form, run one analyze call and return the rendered result with out-of-band export controls",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "query"
                ],
                "summary": "Analyze events",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Department",
                        "name": "departamento",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "City",
                        "name": "ciudad",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Date (YYYY-MM-DD), month mode",
                        "name": "fecha",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Year (YYYY), year mode",
                        "name": "year_select",
                        "in": "formData"
                    },
                    {
                        "enum": [
                            "table",
                            "detail"
                        ],
                        "type": "string",
                        "description": "Result format",
                        "name": "format",
                        "in": "formData"
                    },
                    {
                        "enum": [
                            "month",
                            "year"
                        ],
                        "type": "string",
                        "description": "Period mode shown by the page",
                        "name": "periodo_type",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Result fragment",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Invalid form payload",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Event Form API",
	Description:      "Server-rendered form for analysing commercial events by Colombian department, city and period.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
