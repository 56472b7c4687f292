// Package coach adapts an external chat-completion service into a fitness
// coach. Failures never escape as errors: an unconfigured key or a remote
// fault maps to a fixed reply string.
package coach

import (
	"context"
	"fmt"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	"fitmitra/internal/models"
)

const systemInstruction = `You are an expert fitness coach. You provide:
- Personalized fitness advice
- Workout tips and form corrections
- Nutrition guidance (especially Indian cuisine)
- Motivation and support
- Evidence-based fitness information

Be friendly, encouraging, and professional. Keep responses concise but helpful.`

const notConfiguredReply = "AI Coach is not configured. Set COACH_API_KEY in the environment to enable it."

// completionClient is the slice of the openai client the coach uses,
// extracted so tests can stub the remote call.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Coach keeps one conversation per user. Sessions are guarded by a mutex:
// handlers share a single Coach across concurrent requests.
type Coach struct {
	client completionClient
	model  string

	mu       sync.Mutex
	sessions map[int][]openai.ChatCompletionMessage
}

// New builds a coach. An empty apiKey yields a coach that answers every
// message with configuration instructions instead of calling out.
func New(apiKey, model string) *Coach {
	c := &Coach{model: model}
	if apiKey != "" {
		c.client = openai.NewClient(apiKey)
	}
	return c
}

// Respond sends the user message, prefixed by the system instruction and an
// optional profile context block, and returns the reply verbatim. The
// conversation history accumulates per user across calls.
func (c *Coach) Respond(ctx context.Context, userID int, userMessage string, profile *models.Profile) string {
	if c.client == nil {
		return notConfiguredReply
	}

	system := systemInstruction
	if profile != nil {
		system += fmt.Sprintf("\n\nUser Profile:\n- Age: %d\n- Gender: %s\n- Goal: %s\n- Experience: %s",
			profile.Age, profile.Gender, profile.Goal, profile.Experience)
	}

	// Snapshot the conversation under the lock; the remote call runs outside
	// it so one slow completion does not stall every other user.
	c.mu.Lock()
	if c.sessions == nil {
		c.sessions = make(map[int][]openai.ChatCompletionMessage)
	}
	c.sessions[userID] = append(c.sessions[userID], openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})
	history := c.sessions[userID]
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	messages = append(messages, history...)
	c.mu.Unlock()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return fmt.Sprintf("Error getting response: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "Error getting response: empty completion"
	}

	reply := resp.Choices[0].Message.Content
	c.mu.Lock()
	c.sessions[userID] = append(c.sessions[userID], openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})
	c.mu.Unlock()
	return reply
}

// WorkoutAdvice asks for form tips on a specific exercise.
func (c *Coach) WorkoutAdvice(ctx context.Context, userID int, exercise string, level models.ExperienceLevel) string {
	prompt := fmt.Sprintf("Provide form tips and common mistakes for %s exercise for a %s level person. Keep it concise.", exercise, level)
	return c.Respond(ctx, userID, prompt, nil)
}

// NutritionAdvice asks for diet guidance toward a goal.
func (c *Coach) NutritionAdvice(ctx context.Context, userID int, goal models.FitnessGoal, pref models.DietPreference) string {
	prompt := fmt.Sprintf("Provide nutrition tips for someone with %s goal following a %s diet, focusing on Indian cuisine. Keep it concise.", goal, pref)
	return c.Respond(ctx, userID, prompt, nil)
}

// AnalyzeProgress asks for a short reading of the user's trend.
func (c *Coach) AnalyzeProgress(ctx context.Context, userID int, startWeight, currentWeight, goalWeight float64, weeks float64) string {
	prompt := fmt.Sprintf(`Analyze this fitness progress and provide insights:
Starting Weight: %.1f kg
Current Weight: %.1f kg
Goal Weight: %.1f kg
Weeks Elapsed: %.0f

Provide brief encouragement and suggestions.`, startWeight, currentWeight, goalWeight, weeks)
	return c.Respond(ctx, userID, prompt, nil)
}
