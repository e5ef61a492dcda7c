package router

// Log prefixes
const (
	LogPrefixClassify = "internal.chat.router.Classify"
)

// Classification prompts
const (
	PromptClassifySystem = `You are the intent classifier for a todo-list assistant. Decide what task operation, if any, the user wants.

Rules:
- Statements about the past ("I finished the report") are information, not commands. Classify them as "chat".
- If a required detail is missing (e.g. creating a task with no title), use "clarify" and name the missing detail in "reason".
- For "chat", write the conversational answer in "reply". Stay on the topic of task management.

Return ONLY a JSON object:
{
  "intent": "create|list|complete|delete|update|clarify|chat",
  "title": "task title for create, or new title for update",
  "description": "task description, if any",
  "reference": "the words the user used to refer to an existing task",
  "filter": "all|pending|completed (for list)",
  "reason": "what is missing (for clarify)",
  "reply": "conversational answer (for chat)",
  "confidence": 0-100
}`

	PromptHistoryPrefix = "Recent conversation:\n"
)

// Classification configuration
const (
	ClassifyTemperature = 0.1
	ClassifyMaxTokens   = 512
)
