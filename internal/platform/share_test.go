package platform

import "testing"

func TestShareArgs(t *testing.T) {
	args := shareArgs("Paris Trip", "Check out my Paris trip plan made with TripWise!", "https://tripwise.app")

	extras := map[string]string{}
	for i := 0; i+2 < len(args); i++ {
		if args[i] == "--es" {
			extras[args[i+1]] = args[i+2]
		}
	}

	if extras["android.intent.extra.SUBJECT"] != "Paris Trip" {
		t.Errorf("subject = %q", extras["android.intent.extra.SUBJECT"])
	}
	expected := "Check out my Paris trip plan made with TripWise!\nhttps://tripwise.app"
	if extras["android.intent.extra.TEXT"] != expected {
		t.Errorf("text = %q", extras["android.intent.extra.TEXT"])
	}
	if args[2] != "android.intent.action.SEND" {
		t.Errorf("unexpected action %q", args[2])
	}
}

func TestShareArgs_NoLink(t *testing.T) {
	args := shareArgs("Rome Trip", "hello", "")
	if last := args[len(args)-1]; last != "hello" {
		t.Errorf("text should be trimmed when there is no link, got %q", last)
	}
}

func TestShareText_Desktop(t *testing.T) {
	if CanShareNatively() {
		t.Skip("desktop only")
	}
	if err := ShareText("t", "x", "y"); err == nil {
		t.Error("expected an error without a native share sheet")
	}
}
