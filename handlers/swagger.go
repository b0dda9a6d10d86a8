package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the phonebook API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>phonebook - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "phonebook", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Person": { "type": "object", "properties": { "id": {"type":"integer"}, "name": {"type":"string"}, "number": {"type":"string"} } },
      "Error": { "type": "object", "properties": { "error": {"type":"string"} } }
    }
  },
  "paths": {
    "/api/persons": {
      "get": { "summary": "List all phonebook entries", "responses": { "200": { "description": "entries", "content": { "application/json": { "schema": {"type":"array","items":{"$ref":"#/components/schemas/Person"}}}}}}},
      "post": {
        "summary": "Add an entry",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"number":{"type":"string"}}}}}},
        "responses": {
          "200": { "description": "created entry", "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Person"}}}},
          "400": { "description": "name is missing | number is missing | name must be unique", "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Error"}}}}
        }
      }
    },
    "/api/persons/{id}": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"integer"} } ],
      "get": { "summary": "Get one entry", "responses": { "200": { "description": "entry", "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Person"}}}}, "404": { "description": "no such entry" } } },
      "delete": { "summary": "Remove an entry", "responses": { "204": { "description": "removed (or never existed)" } } }
    },
    "/info": { "get": { "summary": "Entry count and server time", "responses": { "200": { "description": "HTML fragment" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "exposition format" } } } }
  }
}`
