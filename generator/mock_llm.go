package generator

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// MockLLM is an offline stand-in for local runs; it never calls a model.
type MockLLM struct{}

var (
	mockTopicRe = regexp.MustCompile(`on the topic: (.+?)\.\n`)
	mockTitleRe = regexp.MustCompile(`blog post on the topic: "(.*)"`)
)

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	if strings.Contains(prompt.User, TitleIntro) {
		topic := "your topic"
		if sm := mockTopicRe.FindStringSubmatch(prompt.User); len(sm) == 2 {
			topic = sm[1]
		}
		var sb strings.Builder
		sb.WriteString(TitleIntro + "\n\n")
		for i := 1; i <= 10; i++ {
			sb.WriteString(fmt.Sprintf("%d. %s, Part %d\n", i, topic, i))
		}
		return sb.String(), nil
	}

	title := "Untitled"
	if sm := mockTitleRe.FindStringSubmatch(prompt.User); len(sm) == 2 && sm[1] != "" {
		title = sm[1]
	}
	var sb strings.Builder
	sb.WriteString("## Introduction\n\n")
	sb.WriteString(fmt.Sprintf("This is a placeholder post about **%s**.\n\n", title))
	sb.WriteString("## Body\n\n")
	sb.WriteString("Generated offline from the prompt:\n\n")
	sb.WriteString("```\n")
	sb.WriteString(strings.TrimSpace(prompt.User))
	sb.WriteString("\n```\n\n")
	sb.WriteString("## Conclusion\n\nSwitch llm.provider to a real model for actual content.\n")
	return sb.String(), nil
}
