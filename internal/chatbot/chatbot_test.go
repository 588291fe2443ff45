package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyGreeting(t *testing.T) {
	assert.Equal(t, "Hello! I can help with rooms, students, payments, and complaints.", Reply("hello"))
	assert.Equal(t, Reply("hello"), Reply("Hey there"))
	assert.Equal(t, Reply("hello"), Reply("  HI  "))
}

func TestReplyKeywordRouting(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"room", "any rooms vacant?", "Check Rooms section for availability. Use Allocate/Vacate to manage rooms."},
		{"student", "how do I register", "Go to Students to register a new student and assign a room."},
		{"payment", "when are fees due", "Use Payments to record fees. Accepted types: Semester Fee, Security Deposit, Other."},
		{"complaint", "I have a problem", "Use Complaints to file and resolve issues. Typical SLA: 24-48 hours."},
		{"contact", "what is your phone number", "Hostel office: +1 234 567 8900, email: hostel@university.edu (9am-5pm)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reply(tt.message))
		})
	}
}

func TestReplyFirstMatchWins(t *testing.T) {
	// "hi" appears inside no other rule's keywords, but a message hitting
	// two rules resolves to the earlier rule.
	got := Reply("hello, I have a payment problem")
	assert.Equal(t, "Hello! I can help with rooms, students, payments, and complaints.", got)
}

func TestReplySubstringMatch(t *testing.T) {
	// Keyword containment is substring-based, so "fee" inside "coffee"
	// still routes to payments.
	assert.Equal(t, Reply("fee"), Reply("coffee"))
}

func TestReplyEmpty(t *testing.T) {
	assert.Equal(t, EmptyPrompt, Reply(""))
	assert.Equal(t, EmptyPrompt, Reply("   \t  "))
}

func TestReplyDefault(t *testing.T) {
	assert.Equal(t, DefaultReply, Reply("what is the meaning of life"))
}
