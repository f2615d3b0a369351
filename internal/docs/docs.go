// Package docs registers the swagger document served at /swagger.
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
        "/question/add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["question"],
                "summary": "Add a question to the bank",
                "parameters": [
                    {
                        "description": "Question",
                        "name": "question",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/question.CreateQuestionDTO"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/question.Question"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/question/all": {
            "get": {
                "produces": ["application/json"],
                "tags": ["question"],
                "summary": "List all questions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/question.Question"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/question/category/{category}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["question"],
                "summary": "List questions of a category",
                "parameters": [
                    {"type": "string", "example": "Java", "description": "Category", "name": "category", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/question.Question"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/quiz/create": {
            "post": {
                "description": "Creates a quiz with the given number of random questions from a category",
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Create a new quiz",
                "parameters": [
                    {"type": "string", "example": "Java", "description": "Category of questions", "name": "category", "in": "query", "required": true},
                    {"type": "integer", "example": 5, "description": "Number of questions in the quiz", "name": "numQ", "in": "query", "required": true},
                    {"type": "string", "example": "Java Basics Quiz", "description": "Title of the quiz", "name": "title", "in": "query", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/quiz.CreateQuizResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/quiz/get/{id}": {
            "get": {
                "description": "Returns the questions of a quiz without their right answers",
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Get quiz questions",
                "parameters": [
                    {"type": "string", "description": "Quiz ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/question.View"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/quiz/submit/{id}": {
            "post": {
                "description": "Grades the responses by position and returns the number of right answers",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Submit quiz answers",
                "parameters": [
                    {"type": "string", "description": "Quiz ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Responses in question order",
                        "name": "responses",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/quiz.Response"}}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "integer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "config.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "question.CreateQuestionDTO": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "Java"},
                "question_title": {"type": "string", "example": "Which keyword declares a constant?"},
                "option1": {"type": "string", "example": "var"},
                "option2": {"type": "string", "example": "final"},
                "option3": {"type": "string", "example": "static"},
                "option4": {"type": "string", "example": "const"},
                "right_answer": {"type": "string", "example": "final"}
            }
        },
        "question.Question": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "category": {"type": "string"},
                "question_title": {"type": "string"},
                "option1": {"type": "string"},
                "option2": {"type": "string"},
                "option3": {"type": "string"},
                "option4": {"type": "string"},
                "right_answer": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "question.View": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "question_title": {"type": "string"},
                "option1": {"type": "string"},
                "option2": {"type": "string"},
                "option3": {"type": "string"},
                "option4": {"type": "string"}
            }
        },
        "quiz.CreateQuizResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "quiz.Response": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "7a1c9a5e-2f43-4c1b-9d0d-6c3f0f6f2b11"},
                "response": {"type": "string", "example": "final"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Quiz API",
	Description:      "Build quizzes from a categorized question bank, fetch them without answers and grade submissions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
