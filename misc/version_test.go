package misc

import "testing"

func TestIdentification(t *testing.T) {
	if GetAppName() != "cssm" {
		t.Errorf("GetAppName() = %q, want cssm", GetAppName())
	}
	if GetVersion() == "" {
		t.Error("GetVersion() is empty")
	}
	if GetGitHash() == "" {
		t.Error("GetGitHash() is empty")
	}
}

func TestGetGitHash_Override(t *testing.T) {
	saved := gitHash
	t.Cleanup(func() { gitHash = saved })

	gitHash = "0123abc"
	if got := GetGitHash(); got != "0123abc" {
		t.Errorf("GetGitHash() = %q, want 0123abc", got)
	}
}
