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
  <title>Bank Service API Docs</title>
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
    "title": "Bank Service API",
    "version": "1.0.0"
  },
  "paths": {
    "/api/user/register": {
      "post": {
        "summary": "Register a new user",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["loginId", "password", "name"],
                "properties": {
                  "loginId": {"type": "string"},
                  "password": {"type": "string"},
                  "name": {"type": "string"},
                  "nickname": {"type": "string"},
                  "phone": {"type": "string"},
                  "email": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "User registered"},
          "400": {"description": "Validation failed"},
          "409": {"description": "Login ID already taken"}
        }
      }
    },
    "/api/user/login": {
      "post": {
        "summary": "Authenticate a user",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["loginId", "password"],
                "properties": {
                  "loginId": {"type": "string"},
                  "password": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Login successful"},
          "401": {"description": "Password does not match"},
          "404": {"description": "Login ID does not exist"}
        }
      }
    },
    "/api/user/{loginId}": {
      "get": {
        "summary": "Look up a user profile",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "loginId", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "User found"},
          "404": {"description": "User not found"}
        }
      }
    },
    "/api/account/create": {
      "post": {
        "summary": "Open a checking account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["ownerId", "password"],
                "properties": {
                  "ownerId": {"type": "string"},
                  "password": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Account created"},
          "400": {"description": "Validation failed"}
        }
      }
    },
    "/api/account/{accNumber}": {
      "get": {
        "summary": "Look up a checking account",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "accNumber", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Account found"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/api/account/my/{ownerId}": {
      "get": {
        "summary": "List a user's checking accounts",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "ownerId", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Accounts listed"}
        }
      }
    },
    "/api/account/deposit": {
      "post": {
        "summary": "Deposit into a checking account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "amount"],
                "properties": {
                  "accountNumber": {"type": "string"},
                  "amount": {"type": "integer", "format": "int64"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Deposit applied"},
          "400": {"description": "Invalid amount"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/api/account/withdraw": {
      "post": {
        "summary": "Withdraw from a checking account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "password", "amount"],
                "properties": {
                  "accountNumber": {"type": "string"},
                  "password": {"type": "string"},
                  "amount": {"type": "integer", "format": "int64"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Withdrawal applied"},
          "400": {"description": "Invalid amount or insufficient balance"},
          "401": {"description": "Password does not match"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/api/account/transfer": {
      "post": {
        "summary": "Transfer between checking accounts",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["fromAccountNumber", "toAccountNumber", "password", "amount"],
                "properties": {
                  "fromAccountNumber": {"type": "string"},
                  "toAccountNumber": {"type": "string"},
                  "password": {"type": "string"},
                  "amount": {"type": "integer", "format": "int64"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Transfer applied"},
          "400": {"description": "Invalid amount or insufficient balance"},
          "401": {"description": "Password does not match"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/api/savings/create": {
      "post": {
        "summary": "Open a fixed-term savings account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["ownerId", "password", "period", "dailyDepositCap"],
                "properties": {
                  "ownerId": {"type": "string"},
                  "password": {"type": "string"},
                  "period": {"type": "integer", "enum": [30, 180, 365]},
                  "dailyDepositCap": {"type": "integer", "format": "int64", "enum": [10000, 30000, 50000, 100000]}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Savings account created"},
          "400": {"description": "Validation failed"}
        }
      }
    },
    "/api/savings/{accNumber}": {
      "get": {
        "summary": "Look up a savings account",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "accNumber", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Savings account found"},
          "404": {"description": "Savings account not found"}
        }
      }
    },
    "/api/savings/my/{ownerId}": {
      "get": {
        "summary": "List a user's savings accounts",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "ownerId", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Savings accounts listed"}
        }
      }
    },
    "/api/savings/deposit": {
      "post": {
        "summary": "Deposit into a savings account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "amount"],
                "properties": {
                  "accountNumber": {"type": "string"},
                  "amount": {"type": "integer", "format": "int64"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Deposit applied"},
          "400": {"description": "Invalid amount, cap exceeded, or account not active"},
          "404": {"description": "Savings account not found"},
          "409": {"description": "Already deposited today"}
        }
      }
    },
    "/api/savings/close": {
      "post": {
        "summary": "Close a savings account early",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "password"],
                "properties": {
                  "accountNumber": {"type": "string"},
                  "password": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Savings account closed"},
          "401": {"description": "Password does not match"},
          "404": {"description": "Savings account not found"},
          "409": {"description": "Savings account already closed"}
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
