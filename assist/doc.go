// Package assist implements the AI assistant behind the workflow's
// assistant view: a chat session bound to a snapshot of the dataset the
// view received, answered by a local Ollama model through langchaingo.
//
// The session builds a system prompt describing the snapshot (sample
// breakdown, element frequencies, statistical summaries) so the model
// answers from the actual data instead of guessing. Answers arrive as
// markdown and are sanitized to HTML with RenderReply before display.
package assist
