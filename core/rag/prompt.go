package rag

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

const (
	qaRole = "You are a precise assistant for question answering over a user's own documents. " +
		"Answer strictly and only from the reference context provided below, in a formal and precise tone. " +
		"Do not use outside knowledge. If the context does not contain the answer, state that the " +
		"provided context is insufficient.\n\n" +
		"Context:\n{context}"

	summaryRole = "You are a formal summarizer. Produce a single summary of the supplied document text " +
		"written in paragraph form, using long, complete sentences and a formal register. " +
		"Do not use bullet points, lists or headings."
)

// qaTemplate 创建问答模板
func qaTemplate() prompt.ChatTemplate {
	return prompt.FromMessages(schema.FString,
		schema.SystemMessage(qaRole),
		schema.UserMessage("Question: {question}"),
	)
}

// summaryTemplate 创建总结模板
func summaryTemplate() prompt.ChatTemplate {
	return prompt.FromMessages(schema.FString,
		schema.SystemMessage(summaryRole),
		schema.UserMessage("{text}"),
	)
}

// BuildQAPrompt assembles the grounded two-message prompt for question
// answering: a system message carrying the retrieved context and a user
// message carrying the literal question.
func BuildQAPrompt(question, contextText string) ([]*schema.Message, error) {
	messages, err := qaTemplate().Format(context.Background(), map[string]any{
		"context":  contextText,
		"question": question,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format qa template: %w", err)
	}
	return messages, nil
}

// BuildSummaryPrompt assembles the two-message summarization prompt.
// The text is passed through whole; any length limit is the completion
// model's concern.
func BuildSummaryPrompt(text string) ([]*schema.Message, error) {
	messages, err := summaryTemplate().Format(context.Background(), map[string]any{
		"text": text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format summary template: %w", err)
	}
	return messages, nil
}
