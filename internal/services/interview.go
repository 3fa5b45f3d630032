package services

import (
	"log"
	"strings"

	"github.com/tidwall/gjson"

	"alfredoptarigan/resume-refiner/internal/models"
)

const interviewQuestionCount = 5

// FallbackInterviewQA is returned when the model output holds no usable pairs.
var FallbackInterviewQA = []models.QuestionAnswer{
	{
		Question: "Tell me about your experience with similar roles?",
		Answer:   "Based on the resume, I have...",
	},
}

// ParseInterviewQA reads question/answer pairs from model output. It accepts
// a JSON array or an object holding a "questions" array, optionally wrapped
// in a markdown code fence. ok is false when the fallback pair was used.
func ParseInterviewQA(text string) ([]models.QuestionAnswer, bool) {
	jsonStr := extractJSON(text)
	if !gjson.Valid(jsonStr) {
		log.Printf("⚠️ Interview Q&A response is not valid JSON, using fallback")
		return fallbackInterviewQA(), false
	}

	root := gjson.Parse(jsonStr)
	items := root
	if root.IsObject() {
		items = root.Get("questions")
	}
	if !items.IsArray() {
		log.Printf("⚠️ Interview Q&A response has no question array, using fallback")
		return fallbackInterviewQA(), false
	}

	var pairs []models.QuestionAnswer
	items.ForEach(func(_, item gjson.Result) bool {
		question := strings.TrimSpace(item.Get("question").String())
		if question == "" {
			return true
		}
		pairs = append(pairs, models.QuestionAnswer{
			Question: question,
			Answer:   strings.TrimSpace(item.Get("answer").String()),
		})
		return true
	})

	if len(pairs) == 0 {
		log.Printf("⚠️ Interview Q&A response held no questions, using fallback")
		return fallbackInterviewQA(), false
	}
	return pairs, true
}

func fallbackInterviewQA() []models.QuestionAnswer {
	return append([]models.QuestionAnswer(nil), FallbackInterviewQA...)
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	// Whichever container opens first is the payload.
	if startArr != -1 && endArr > startArr && (startObj == -1 || startArr < startObj) {
		return text[startArr : endArr+1]
	}
	if startObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	return strings.TrimSpace(text)
}
