package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that may also be sent as a numeric JSON string
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*n = FlexInt(v)
		return nil
	}

	var v int
	if err := json.Unmarshal(bytes.TrimSpace(data), &v); err != nil {
		return err
	}
	*n = FlexInt(v)
	return nil
}

func (n *FlexInt) intPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

func flexInts(in []FlexInt) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   string   `json:"question" validate:"required"`
	Answer     string   `json:"answer" validate:"required"`
	Difficulty *FlexInt `json:"difficulty" validate:"required"`
	Category   *FlexInt `json:"category" validate:"required"`
}

// SearchRequest represents a question search
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" validate:"required"`
}

// QuizRequest asks for the next quiz question
type QuizRequest struct {
	PreviousQuestions []FlexInt            `json:"previous_questions" validate:"required"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category" validate:"required"`
}

// QuizCategoryRequest selects the quiz category, ID 0 meaning all
type QuizCategoryRequest struct {
	ID   *FlexInt `json:"id" validate:"required"`
	Type string   `json:"type"`
}
