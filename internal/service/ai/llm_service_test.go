package ai

import "testing"

func TestDecodeReplyPlainJSON(t *testing.T) {
	if got := decodeReply(`{"reply": "We open at 9am."}`); got != "We open at 9am." {
		t.Fatalf("unexpected reply: %q", got)
	}
}

func TestDecodeReplyFencedJSON(t *testing.T) {
	content := "```json\n{\"reply\": \"See you Tuesday.\"}\n```"
	if got := decodeReply(content); got != "See you Tuesday." {
		t.Fatalf("unexpected reply: %q", got)
	}
}

func TestDecodeReplyEmbeddedJSON(t *testing.T) {
	content := `Here you go: {"reply": "Yes, we do."} hope that helps`
	if got := decodeReply(content); got != "Yes, we do." {
		t.Fatalf("unexpected reply: %q", got)
	}
}

func TestDecodeReplyMissingField(t *testing.T) {
	if got := decodeReply(`{"answer": "nope"}`); got != FallbackReply {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestDecodeReplyNotJSON(t *testing.T) {
	if got := decodeReply("just some prose"); got != FallbackReply {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestDecodeReplyEmptyField(t *testing.T) {
	if got := decodeReply(`{"reply": "  "}`); got != FallbackReply {
		t.Fatalf("expected fallback for blank reply, got %q", got)
	}
}
