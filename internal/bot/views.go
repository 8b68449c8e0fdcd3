package bot

import (
	"fmt"
	"strings"

	"github.com/example/event-assistant/internal/application"
	"github.com/example/event-assistant/internal/persistence"
	"github.com/example/event-assistant/internal/texts"
)

func renderMeetingDetails(lang string, meeting persistence.Meeting) string {
	return texts.Text(lang, "meeting_details", meeting.Name, meeting.Date, meeting.Location)
}

func renderProfile(lang string, user persistence.User) string {
	if !user.HasCompleteProfile() && user.Name == "" && user.Phone == "" && user.Company == "" {
		return texts.Text(lang, "profile_empty")
	}
	return texts.Text(lang, "profile_view", user.Name, user.Phone, user.Company)
}

func renderAgenda(lang string, items []persistence.AgendaItem) string {
	if len(items) == 0 {
		return texts.Text(lang, "agenda_empty")
	}
	var b strings.Builder
	b.WriteString(texts.Text(lang, "agenda_title"))
	for _, item := range items {
		b.WriteString("\n")
		b.WriteString(texts.Text(lang, "agenda_item", item.StartTime, item.EndTime, item.Title))
		if item.Description != "" {
			b.WriteString("\n  ")
			b.WriteString(item.Description)
		}
	}
	return b.String()
}

func renderAgendaItem(item persistence.AgendaItem) string {
	var b strings.Builder
	b.WriteString(item.Title)
	b.WriteString("\n")
	b.WriteString(item.StartTime)
	if item.EndTime != "" {
		b.WriteString(" - ")
		b.WriteString(item.EndTime)
	}
	if item.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(item.Description)
	}
	return b.String()
}

func renderPeople(lang string, people []persistence.User) string {
	if len(people) == 0 {
		return texts.Text(lang, "people_empty")
	}
	var b strings.Builder
	b.WriteString(texts.Text(lang, "people_title"))
	for _, person := range people {
		b.WriteString(fmt.Sprintf("\n%s, %s", person.Name, person.Company))
	}
	return b.String()
}

func renderQuestions(lang string, questions []persistence.Question) string {
	if len(questions) == 0 {
		return texts.Text(lang, "questions_empty")
	}
	var lines []string
	for _, question := range questions {
		lines = append(lines, fmt.Sprintf("- %s", question.Text))
	}
	return strings.Join(lines, "\n")
}

func renderFeedbackSummary(lang string, summary application.FeedbackSummary) string {
	if summary.Good == 0 && summary.Neutral == 0 && summary.Bad == 0 && len(summary.Comments) == 0 {
		return texts.Text(lang, "feedback_empty")
	}
	var b strings.Builder
	b.WriteString(texts.Text(lang, "feedback_summary", summary.Good, summary.Neutral, summary.Bad))
	for _, entry := range summary.Comments {
		b.WriteString("\n- ")
		b.WriteString(entry.Comment)
	}
	return b.String()
}
