// Package docs registers the Swagger document served at /swagger.
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
        "/admin/questions": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Questions"],
                "summary": "(Admin) Add a question",
                "parameters": [{"description": "Question", "name": "question", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateQuestionRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.QuestionResponse"}},
                    "400": {"description": "Invalid question", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Question text already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/questions/import": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Admin - Questions"],
                "summary": "(Admin) Import questions from a spreadsheet",
                "parameters": [{"type": "file", "description": "Spreadsheet file", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ImportResponse"}},
                    "400": {"description": "Missing file or unsupported format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/questions/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin - Questions"],
                "summary": "(Admin) Question bank statistics",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionStatsResponse"}}}
            }
        },
        "/admin/questions/clear": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin - Questions"],
                "summary": "(Admin) Delete every question",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ClearQuestionsResponse"}}}
            }
        },
        "/admin/questions/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Questions"],
                "summary": "(Admin) Update a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "question", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateQuestionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin - Questions"],
                "summary": "(Admin) Delete a question",
                "parameters": [{"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/questions/{id}/explanation": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin - Questions"],
                "summary": "(Admin) Generate an AI explanation for a question",
                "parameters": [{"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExplanationResponse"}},
                    "503": {"description": "Explanation generator not configured", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User - Questions"],
                "summary": "(User) Browse the question bank",
                "parameters": [
                    {"enum": ["single", "multiple", "judge"], "type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "name": "per_page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionListResponse"}}}
            }
        },
        "/questions/random": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User - Questions"],
                "summary": "(User) Draw a practice set",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PracticeResponse"}}}
            }
        },
        "/questions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User - Questions"],
                "summary": "(User) Get one question",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/exams": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User - Exams"],
                "summary": "(User) List my exam sessions",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "per_page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExamListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User - Exams"],
                "summary": "(User) Start a mock exam",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.StartExamResponse"}},
                    "409": {"description": "An exam is already in progress", "schema": {"$ref": "#/definitions/dto.ActiveSessionErrorResponse"}}
                }
            }
        },
        "/exams/{exam_id}/questions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User - Exams"],
                "summary": "(User) Draw the questions of an exam",
                "parameters": [{"type": "integer", "name": "exam_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExamQuestionsResponse"}},
                    "403": {"description": "Exam belongs to another user", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Exam not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Exam already completed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/exams/{exam_id}/submit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["User - Exams"],
                "summary": "(User) Submit answers and finish an exam",
                "parameters": [
                    {"type": "integer", "name": "exam_id", "in": "path", "required": true},
                    {"name": "answers", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SubmitExamRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SubmitExamResponse"}},
                    "409": {"description": "Exam already completed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/exams/{exam_id}/result": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User - Exams"],
                "summary": "(User) Get the result of an exam",
                "parameters": [{"type": "integer", "name": "exam_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExamResultResponse"}}}
            }
        },
        "/wrong-questions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User - Wrong Questions"],
                "summary": "(User) List my wrong questions",
                "parameters": [
                    {"type": "boolean", "name": "show_mastered", "in": "query"},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "name": "per_page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.WrongQuestionListResponse"}}}
            }
        },
        "/wrong-questions/{id}/master": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User - Wrong Questions"],
                "summary": "(User) Mark a wrong question as mastered",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "403": {"description": "Entry belongs to another user", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Entry not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "details": {"type": "array", "items": {"type": "string"}}}},
        "dto.ActiveSessionErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "exam_id": {"type": "integer"}}},
        "dto.MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "dto.CreateQuestionRequest": {
            "type": "object",
            "required": ["question_text", "question_type", "correct_answer"],
            "properties": {
                "question_text": {"type": "string"},
                "question_type": {"type": "string", "enum": ["single", "multiple", "judge"]},
                "option_a": {"type": "string"}, "option_b": {"type": "string"}, "option_c": {"type": "string"},
                "option_d": {"type": "string"}, "option_e": {"type": "string"}, "option_f": {"type": "string"},
                "correct_answer": {"type": "string"},
                "explanation": {"type": "string"},
                "difficulty": {"type": "integer", "minimum": 1, "maximum": 5}
            }
        },
        "dto.UpdateQuestionRequest": {
            "type": "object",
            "properties": {
                "question_text": {"type": "string"},
                "question_type": {"type": "string", "enum": ["single", "multiple", "judge"]},
                "option_a": {"type": "string"}, "option_b": {"type": "string"}, "option_c": {"type": "string"},
                "option_d": {"type": "string"}, "option_e": {"type": "string"}, "option_f": {"type": "string"},
                "correct_answer": {"type": "string"},
                "explanation": {"type": "string"},
                "difficulty": {"type": "integer", "minimum": 1, "maximum": 5}
            }
        },
        "dto.QuestionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "question_text": {"type": "string"},
                "question_type": {"type": "string"},
                "option_a": {"type": "string"}, "option_b": {"type": "string"}, "option_c": {"type": "string"},
                "option_d": {"type": "string"}, "option_e": {"type": "string"}, "option_f": {"type": "string"},
                "correct_answer": {"type": "string"},
                "explanation": {"type": "string"},
                "difficulty": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "dto.ExamQuestionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "question_text": {"type": "string"},
                "question_type": {"type": "string"},
                "option_a": {"type": "string"}, "option_b": {"type": "string"}, "option_c": {"type": "string"},
                "option_d": {"type": "string"}, "option_e": {"type": "string"}, "option_f": {"type": "string"},
                "difficulty": {"type": "integer"}
            }
        },
        "dto.QuestionListResponse": {
            "type": "object",
            "properties": {
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResponse"}},
                "total": {"type": "integer"}, "pages": {"type": "integer"}, "current_page": {"type": "integer"}
            }
        },
        "dto.PracticeResponse": {
            "type": "object",
            "properties": {
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResponse"}},
                "total": {"type": "integer"}
            }
        },
        "dto.QuestionStatsResponse": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"}, "single": {"type": "integer"},
                "multiple": {"type": "integer"}, "judge": {"type": "integer"}
            }
        },
        "dto.ClearQuestionsResponse": {"type": "object", "properties": {"message": {"type": "string"}, "deleted": {"type": "integer"}}},
        "dto.ExplanationResponse": {"type": "object", "properties": {"question_id": {"type": "integer"}, "explanation": {"type": "string"}}},
        "dto.SheetSummary": {"type": "object", "properties": {"sheet": {"type": "string"}, "imported": {"type": "integer"}}},
        "dto.ImportResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "imported_count": {"type": "integer"},
                "error_count": {"type": "integer"},
                "sheets": {"type": "array", "items": {"$ref": "#/definitions/dto.SheetSummary"}}
            }
        },
        "dto.ExamSessionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "user_id": {"type": "integer"},
                "status": {"type": "string", "enum": ["in_progress", "completed"]},
                "start_time": {"type": "string"}, "end_time": {"type": "string"},
                "total_questions": {"type": "integer"}, "correct_count": {"type": "integer"},
                "score": {"type": "number"}
            }
        },
        "dto.StartExamResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}, "exam_id": {"type": "integer"},
                "exam": {"$ref": "#/definitions/dto.ExamSessionResponse"}
            }
        },
        "dto.ExamQuestionsResponse": {
            "type": "object",
            "properties": {
                "exam": {"$ref": "#/definitions/dto.ExamSessionResponse"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.ExamQuestionResponse"}}
            }
        },
        "dto.UserAnswerDTO": {
            "type": "object",
            "required": ["question_id"],
            "properties": {"question_id": {"type": "integer"}, "answer": {"type": "string"}}
        },
        "dto.SubmitExamRequest": {
            "type": "object",
            "properties": {"answers": {"type": "array", "items": {"$ref": "#/definitions/dto.UserAnswerDTO"}}}
        },
        "dto.SubmitExamResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "exam": {"$ref": "#/definitions/dto.ExamSessionResponse"},
                "score": {"type": "number"}, "correct_count": {"type": "integer"}, "total_questions": {"type": "integer"}
            }
        },
        "dto.AnswerRecordResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "exam_id": {"type": "integer"}, "question_id": {"type": "integer"},
                "user_answer": {"type": "string"}, "is_correct": {"type": "boolean"}, "answer_time": {"type": "string"},
                "question": {"$ref": "#/definitions/dto.QuestionResponse"}
            }
        },
        "dto.ExamResultResponse": {
            "type": "object",
            "properties": {
                "exam": {"$ref": "#/definitions/dto.ExamSessionResponse"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.AnswerRecordResponse"}}
            }
        },
        "dto.ExamListResponse": {
            "type": "object",
            "properties": {
                "exams": {"type": "array", "items": {"$ref": "#/definitions/dto.ExamSessionResponse"}},
                "total": {"type": "integer"}, "pages": {"type": "integer"}, "current_page": {"type": "integer"}
            }
        },
        "dto.WrongQuestionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "user_id": {"type": "integer"}, "question_id": {"type": "integer"},
                "wrong_count": {"type": "integer"}, "last_wrong_time": {"type": "string"}, "is_mastered": {"type": "boolean"},
                "question": {"$ref": "#/definitions/dto.QuestionResponse"}
            }
        },
        "dto.WrongQuestionListResponse": {
            "type": "object",
            "properties": {
                "wrong_questions": {"type": "array", "items": {"$ref": "#/definitions/dto.WrongQuestionResponse"}},
                "total": {"type": "integer"}, "pages": {"type": "integer"}, "current_page": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Tiku Question Bank API",
	Description:      "Spreadsheet question import, randomized mock exams, scoring and a per-user wrong-question ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
