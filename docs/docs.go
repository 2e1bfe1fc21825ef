// Package docs registra el documento OpenAPI de la API; lo sirve http-swagger en /swagger/*.
// Se mantiene a mano junto con las anotaciones godoc de los handlers.
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
        "/calculations": {
            "get": {
                "description": "Más nuevo primero, máximo 50.",
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Historial de cálculos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/history.Record"}}}
                }
            },
            "post": {
                "description": "Calcula la dosis y la guarda en el historial. Mismos errores que POST /doses.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Calcular y guardar",
                "parameters": [
                    {"description": "Medicamento, especie y peso (kg)", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/drugs.DoseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/history.Record"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/drugs.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/drugs.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/drugs.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["calculations"],
                "summary": "Borrar historial",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/calculations/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Medicamentos y especies más usados",
                "parameters": [
                    {"type": "integer", "description": "Tamaño del ranking (default 5, 0 = todos)", "name": "top", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/history.Statistics"}}
                }
            }
        },
        "/data": {
            "delete": {
                "tags": ["dashboard"],
                "summary": "Borrar todos los datos",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/doses": {
            "post": {
                "description": "Calcula la dosis total = peso × dosis/kg, redondeada a 4 decimales. No guarda nada (ver POST /calculations).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["doses"],
                "summary": "Calcular dosis",
                "parameters": [
                    {"description": "Medicamento, especie y peso (kg)", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/drugs.DoseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/drugs.doseResponse"}},
                    "400": {"description": "invalid json / invalid_weight", "schema": {"$ref": "#/definitions/drugs.ErrorResponse"}},
                    "404": {"description": "drug_not_found", "schema": {"$ref": "#/definitions/drugs.ErrorResponse"}},
                    "422": {"description": "species_not_configured / species_not_allowed / weight_out_of_range", "schema": {"$ref": "#/definitions/drugs.ErrorResponse"}}
                }
            }
        },
        "/doses/validate": {
            "post": {
                "description": "Misma cadena de reglas que el cálculo; devuelve un veredicto legible. Siempre 200 salvo JSON inválido.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["doses"],
                "summary": "Validar uso",
                "parameters": [
                    {"description": "Medicamento, especie y peso (kg)", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/drugs.DoseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/drugs.validationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/drugs.ErrorResponse"}}
                }
            }
        },
        "/drugs": {
            "get": {
                "description": "Lista el vademécum en orden de catálogo. Con ` + "`" + `species` + "`" + `, solo los permitidos para esa especie.",
                "produces": ["application/json"],
                "tags": ["drugs"],
                "summary": "Listar medicamentos",
                "parameters": [
                    {"type": "string", "description": "Especie (perro, gato, oveja, conejo, aves)", "name": "species", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/drugs.drugResponse"}}}
                }
            }
        },
        "/drugs/{drugID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["drugs"],
                "summary": "Ficha de medicamento",
                "parameters": [
                    {"type": "string", "description": "ID del medicamento", "name": "drugID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/drugs.drugResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/drugs.ErrorResponse"}}
                }
            }
        },
        "/export": {
            "get": {
                "description": "Documento JSON con ambas listas y sus estadísticas, como adjunto.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Exportar datos",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.Export"}}
                }
            }
        },
        "/import": {
            "post": {
                "description": "Reemplaza historial y vacunas por los del documento exportado.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Importar datos",
                "parameters": [
                    {"description": "Documento exportado", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dashboard.Export"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.Summary"}},
                    "400": {"description": "invalid document", "schema": {"type": "string"}},
                    "413": {"description": "too many records", "schema": {"type": "string"}}
                }
            }
        },
        "/stats/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Contadores del panel",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.Summary"}}
                }
            }
        },
        "/vaccines": {
            "get": {
                "description": "Más nuevo primero; cada registro trae su estado calculado a hoy.",
                "produces": ["application/json"],
                "tags": ["vaccines"],
                "summary": "Listar vacunas aplicadas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/vaccines.RecordView"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["vaccines"],
                "summary": "Registrar vacuna",
                "parameters": [
                    {"description": "Especie, vacuna y fecha de aplicación", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/vaccines.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/vaccines.Record"}},
                    "400": {"description": "invalid input", "schema": {"type": "string"}},
                    "404": {"description": "vaccine not found", "schema": {"type": "string"}}
                }
            }
        },
        "/vaccines/catalog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["vaccines"],
                "summary": "Vacunas por especie",
                "parameters": [
                    {"type": "string", "description": "Especie", "name": "species", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/vaccines.catalogResponse"}}
                }
            }
        },
        "/vaccines/due": {
            "get": {
                "description": "Registros que vencen dentro de ` + "`" + `within` + "`" + ` días (default 14), incluidos los vencidos.",
                "produces": ["application/json"],
                "tags": ["vaccines"],
                "summary": "Vacunas a renovar",
                "parameters": [
                    {"type": "integer", "description": "Días", "name": "within", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/vaccines.RecordView"}}}
                }
            }
        },
        "/vaccines/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["vaccines"],
                "summary": "Estadísticas de vacunas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/vaccines.Statistics"}}
                }
            }
        },
        "/vaccines/{recordID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["vaccines"],
                "summary": "Ver registro de vacuna",
                "parameters": [
                    {"type": "string", "description": "ID del registro", "name": "recordID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/vaccines.RecordView"}},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            },
            "put": {
                "description": "Borra el registro y crea uno nuevo (id nuevo) en una sola operación.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["vaccines"],
                "summary": "Editar registro de vacuna",
                "parameters": [
                    {"type": "string", "description": "ID del registro", "name": "recordID", "in": "path", "required": true},
                    {"description": "Datos nuevos", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/vaccines.registerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/vaccines.Record"}},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["vaccines"],
                "summary": "Eliminar registro de vacuna",
                "parameters": [
                    {"type": "string", "description": "ID del registro", "name": "recordID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "dashboard.Export": {
            "type": "object",
            "properties": {
                "app": {"type": "string"},
                "calculations": {"type": "array", "items": {"$ref": "#/definitions/history.Record"}},
                "exportDate": {"type": "string"},
                "statistics": {"$ref": "#/definitions/dashboard.ExportStatistics"},
                "vaccines": {"type": "array", "items": {"$ref": "#/definitions/vaccines.Record"}}
            }
        },
        "dashboard.ExportStatistics": {
            "type": "object",
            "properties": {
                "calculations": {"$ref": "#/definitions/history.Statistics"},
                "vaccines": {"$ref": "#/definitions/vaccines.Statistics"}
            }
        },
        "dashboard.Summary": {
            "type": "object",
            "properties": {
                "totalTreatments": {"type": "integer"},
                "totalVaccines": {"type": "integer"},
                "upcomingVaccines": {"type": "integer"}
            }
        },
        "drugs.DoseRequest": {
            "type": "object",
            "properties": {
                "drug_id": {"type": "string"},
                "species": {"type": "string"},
                "weight": {"type": "number"}
            }
        },
        "drugs.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "max_weight": {"type": "number"},
                "message": {"type": "string"},
                "min_weight": {"type": "number"},
                "reason": {"type": "string"}
            }
        },
        "drugs.WeightRange": {
            "type": "object",
            "properties": {
                "max_weight": {"type": "number"},
                "min_weight": {"type": "number"}
            }
        },
        "drugs.doseResponse": {
            "type": "object",
            "properties": {
                "dosage_range": {"$ref": "#/definitions/drugs.WeightRange"},
                "dose_per_kg": {"type": "number"},
                "drug": {"type": "string"},
                "drug_id": {"type": "string"},
                "frequency": {"type": "string"},
                "route": {"type": "string"},
                "species": {"type": "string"},
                "total_dose": {"type": "number"},
                "total_dose_text": {"type": "string"},
                "unit": {"type": "string"},
                "warnings": {"type": "string"},
                "weight": {"type": "number"}
            }
        },
        "drugs.drugResponse": {
            "type": "object",
            "properties": {
                "concentration": {"type": "number"},
                "description": {"type": "string"},
                "frequency": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "presentation": {"type": "string"},
                "route": {"type": "string"},
                "rules": {"type": "array", "items": {"$ref": "#/definitions/drugs.ruleResponse"}},
                "unit": {"type": "string"},
                "warnings": {"type": "string"}
            }
        },
        "drugs.ruleResponse": {
            "type": "object",
            "properties": {
                "allowed": {"type": "boolean"},
                "dose_per_kg": {"type": "number"},
                "max_weight": {"type": "number"},
                "min_weight": {"type": "number"},
                "reason": {"type": "string"},
                "species": {"type": "string"}
            }
        },
        "drugs.validationResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "message": {"type": "string"},
                "valid": {"type": "boolean"}
            }
        },
        "history.Record": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "dosage_range": {"$ref": "#/definitions/drugs.WeightRange"},
                "dose_per_kg": {"type": "number"},
                "drug": {"type": "string"},
                "drug_id": {"type": "string"},
                "frequency": {"type": "string"},
                "id": {"type": "string"},
                "route": {"type": "string"},
                "species": {"type": "string"},
                "total_dose": {"type": "number"},
                "unit": {"type": "string"},
                "warnings": {"type": "string"},
                "weight": {"type": "number"}
            }
        },
        "history.Statistics": {
            "type": "object",
            "properties": {
                "drug_usage": {"type": "array", "items": {"$ref": "#/definitions/history.UsageCount"}},
                "species_usage": {"type": "array", "items": {"$ref": "#/definitions/history.UsageCount"}},
                "total_calculations": {"type": "integer"}
            }
        },
        "history.UsageCount": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "vaccines.CatalogEntry": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "string"},
                "interval_days": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "vaccines.Record": {
            "type": "object",
            "properties": {
                "administration_date": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "interval_days": {"type": "integer"},
                "next_due_date": {"type": "string"},
                "species": {"type": "string"},
                "vaccine_id": {"type": "string"},
                "vaccine_name": {"type": "string"}
            }
        },
        "vaccines.RecordView": {
            "type": "object",
            "properties": {
                "administration_date": {"type": "string"},
                "created_at": {"type": "string"},
                "days_until": {"type": "integer"},
                "id": {"type": "string"},
                "interval_days": {"type": "integer"},
                "next_due_date": {"type": "string"},
                "species": {"type": "string"},
                "status": {"type": "string", "enum": ["current", "upcoming", "expired"]},
                "status_label": {"type": "string"},
                "vaccine_id": {"type": "string"},
                "vaccine_name": {"type": "string"}
            }
        },
        "vaccines.Statistics": {
            "type": "object",
            "properties": {
                "current": {"type": "integer"},
                "expired": {"type": "integer"},
                "total": {"type": "integer"},
                "upcoming": {"type": "integer"}
            }
        },
        "vaccines.catalogResponse": {
            "type": "object",
            "properties": {
                "species": {"type": "string"},
                "vaccines": {"type": "array", "items": {"$ref": "#/definitions/vaccines.CatalogEntry"}}
            }
        },
        "vaccines.registerRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "species": {"type": "string"},
                "vaccine_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "VetCalc API",
	Description:      "Calculadora de dosis veterinarias y registro de vacunas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
