package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Secure Statement Delivery API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Secure Statement Delivery API",
    "version": "1.0.0"
  },
  "paths": {
    "/api/v1/statements/create": {
      "post": {
        "summary": "Generate a protected account statement and return a retrieval link",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "accountId": {
                    "type": "integer",
                    "format": "int64"
                  }
                },
                "required": ["accountId"]
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Statement generated; data.retrievalLink holds the public link"
          },
          "400": {
            "description": "Validation or constraint failure"
          },
          "404": {
            "description": "Account not found"
          },
          "429": {
            "description": "Rate limit exceeded"
          }
        }
      }
    },
    "/api/v1/public/{retrievalToken}": {
      "get": {
        "summary": "Exchange a retrieval token for the statement PDF",
        "parameters": [
          {
            "name": "retrievalToken",
            "in": "path",
            "required": true,
            "schema": {
              "type": "string",
              "format": "uuid"
            }
          }
        ],
        "responses": {
          "200": {
            "description": "Statement bytes",
            "content": {
              "application/pdf": {}
            }
          },
          "400": {
            "description": "Retrieval failed"
          }
        }
      }
    },
    "/api/v1/transactions/create": {
      "post": {
        "summary": "Create a transaction",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "responses": {
          "201": {
            "description": "Transaction created"
          }
        }
      }
    },
    "/api/v1/transactions/account/{accountId}": {
      "get": {
        "summary": "List an account's transactions ordered by post date",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "parameters": [
          {
            "name": "accountId",
            "in": "path",
            "required": true,
            "schema": {
              "type": "integer",
              "format": "int64"
            }
          }
        ],
        "responses": {
          "200": {
            "description": "Transactions"
          }
        }
      }
    },
    "/api/v1/transactions/{transactionId}": {
      "get": {
        "summary": "Fetch a transaction",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "parameters": [
          {
            "name": "transactionId",
            "in": "path",
            "required": true,
            "schema": {
              "type": "integer",
              "format": "int64"
            }
          }
        ],
        "responses": {
          "200": {
            "description": "Transaction"
          }
        }
      }
    },
    "/api/v1/customer-accounts/create": {
      "post": {
        "summary": "Create a customer account",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "responses": {
          "201": {
            "description": "Customer account created"
          }
        }
      }
    },
    "/api/v1/customer-accounts/{accountId}": {
      "get": {
        "summary": "Fetch a customer account",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "parameters": [
          {
            "name": "accountId",
            "in": "path",
            "required": true,
            "schema": {
              "type": "integer",
              "format": "int64"
            }
          }
        ],
        "responses": {
          "200": {
            "description": "Customer account"
          }
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {
        "type": "http",
        "scheme": "basic"
      }
    }
  }
}`
