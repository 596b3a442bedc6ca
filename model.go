package quizblade

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/flarexio/quizblade/llm"
	"github.com/flarexio/quizblade/source"
	"github.com/flarexio/quizblade/vector"
)

var (
	ErrSourceFetch   = errors.New("source fetch failed")
	ErrEmbedding     = errors.New("embedding failed")
	ErrRetrieval     = errors.New("retrieval failed")
	ErrAssembly      = errors.New("prompt assembly failed")
	ErrGeneration    = errors.New("generation failed")
	ErrUnexpected    = errors.New("unexpected failure")
	ErrRemoteFailure = errors.New("remote failure")
	ErrInvalidQuiz   = errors.New("invalid quiz")
)

const FailureMessage = "send meta tx failed."

const DefaultInstruction = `Create a simple quiz about MagicBlock in English.

The quiz must have four answer choices with exactly one correct answer.
Create only one question and answer pair.
Make sure the question text does not contain the answer.

Output the question and answers in JSON format following the example below.
The value of correct_answer does not have to be A.

Example:

  {
    "question": "some question",
    "answers": {
      "A": "answer A",
      "B": "answer B",
      "C": "answer C",
      "D": "answer D"
    },
    "correct_answer": "answer A"
  }`

type Config struct {
	Model  llm.Config    `yaml:"model"`
	Vector vector.Config `yaml:"vector"`
	Quiz   QuizConfig    `yaml:"quiz"`

	// Location is compiled in; see source.DefaultLocation.
	Location source.Location `yaml:"-"`
}

type QuizConfig struct {
	Instruction string `yaml:"instruction"`
}

func (cfg Config) instruction() string {
	if cfg.Quiz.Instruction == "" {
		return DefaultInstruction
	}

	return cfg.Quiz.Instruction
}

func (cfg Config) location() source.Location {
	if cfg.Location.Bucket == "" && cfg.Location.Key == "" {
		return source.DefaultLocation
	}

	return cfg.Location
}

type State int

const (
	StateIngesting State = iota
	StateRetrieving
	StateAssembling
	StateGenerating
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIngesting:
		return "INGESTING"
	case StateRetrieving:
		return "RETRIEVING"
	case StateAssembling:
		return "ASSEMBLING"
	case StateGenerating:
		return "GENERATING"
	case StateDone:
		return "DONE"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// Result is the outcome of one pipeline run. FailedAt records the state
// the run was in when it failed.
type Result struct {
	State    State
	FailedAt State
	Content  string
	Err      error
}

// QuizPayload is the shape the model is asked to produce. The pipeline
// never parses it; ParseQuiz exists for clients.
type QuizPayload struct {
	Question      string            `json:"question"`
	Answers       map[string]string `json:"answers"`
	CorrectAnswer string            `json:"correct_answer"`
}

// ParseQuiz decodes model output into a QuizPayload, tolerating a
// surrounding markdown code fence.
func ParseQuiz(text string) (QuizPayload, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var quiz QuizPayload
	if err := json.Unmarshal([]byte(text), &quiz); err != nil {
		return QuizPayload{}, err
	}

	if quiz.Question == "" || len(quiz.Answers) != 4 {
		return QuizPayload{}, ErrInvalidQuiz
	}

	for _, answer := range quiz.Answers {
		if answer == quiz.CorrectAnswer {
			return quiz, nil
		}
	}

	return QuizPayload{}, ErrInvalidQuiz
}

var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, X-API-KEY",
}

// Envelope is the transport-neutral response for one invocation.
type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type SuccessBody struct {
	Content string `json:"content"`
}

type FailureBody struct {
	Message string `json:"message"`
}

func corsHeaders() map[string]string {
	headers := make(map[string]string, len(CORSHeaders))
	for k, v := range CORSHeaders {
		headers[k] = v
	}

	return headers
}

func NewSuccessEnvelope(content string) Envelope {
	bs, err := json.Marshal(&SuccessBody{content})
	if err != nil {
		return NewFailureEnvelope()
	}

	return Envelope{
		StatusCode: http.StatusOK,
		Headers:    corsHeaders(),
		Body:       string(bs),
	}
}

func NewFailureEnvelope() Envelope {
	bs, _ := json.Marshal(&FailureBody{FailureMessage})

	return Envelope{
		StatusCode: http.StatusInternalServerError,
		Headers:    corsHeaders(),
		Body:       string(bs),
	}
}

func NewEnvelope(content string, err error) Envelope {
	if err != nil {
		return NewFailureEnvelope()
	}

	return NewSuccessEnvelope(content)
}

// Content extracts the model text from a success envelope.
func (e Envelope) Content() (string, error) {
	if e.StatusCode != http.StatusOK {
		var body FailureBody
		if err := json.Unmarshal([]byte(e.Body), &body); err != nil {
			return "", err
		}

		return "", fmt.Errorf("%w: %s", ErrRemoteFailure, body.Message)
	}

	var body SuccessBody
	if err := json.Unmarshal([]byte(e.Body), &body); err != nil {
		return "", err
	}

	return body.Content, nil
}
