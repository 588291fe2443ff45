// Package chatbot maps free-text messages to canned replies by ordered
// keyword matching. It holds no state and makes no external calls.
package chatbot

import "strings"

// EmptyPrompt is returned when the input is empty after trimming.
const EmptyPrompt = "Please type a message."

// DefaultReply is returned when no keyword set matches.
const DefaultReply = "I can help with: students, rooms, payments, complaints. Try asking about one of these."

// rule pairs a keyword set with its reply. Rules are evaluated top to
// bottom and the first match wins.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! I can help with rooms, students, payments, and complaints.",
	},
	{
		keywords: []string{"room", "availability", "vacant"},
		reply:    "Check Rooms section for availability. Use Allocate/Vacate to manage rooms.",
	},
	{
		keywords: []string{"student", "register", "admission"},
		reply:    "Go to Students to register a new student and assign a room.",
	},
	{
		keywords: []string{"payment", "fees", "fee", "due"},
		reply:    "Use Payments to record fees. Accepted types: Semester Fee, Security Deposit, Other.",
	},
	{
		keywords: []string{"complaint", "issue", "problem", "support"},
		reply:    "Use Complaints to file and resolve issues. Typical SLA: 24-48 hours.",
	},
	{
		keywords: []string{"contact", "phone", "email"},
		reply:    "Hostel office: +1 234 567 8900, email: hostel@university.edu (9am-5pm).",
	},
}

// Reply returns the canned response for a message. Matching is
// case-insensitive substring containment against each rule's keywords.
func Reply(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return EmptyPrompt
	}

	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(normalized, keyword) {
				return r.reply
			}
		}
	}

	return DefaultReply
}
