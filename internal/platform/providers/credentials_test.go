package providers

import "testing"

func TestLookup_CaseInsensitive(t *testing.T) {
	spec := Lookup("  YouTube ")
	if spec == nil {
		t.Fatal("expected spec for youtube, got nil")
	}
	if spec.EnvVar != "YOUTUBE_API_KEY" {
		t.Errorf("EnvVar = %q, want %q", spec.EnvVar, "YOUTUBE_API_KEY")
	}
}

func TestLookup_Unknown(t *testing.T) {
	if spec := Lookup("vimeo"); spec != nil {
		t.Errorf("expected nil for unknown provider, got %+v", spec)
	}
}

func TestEnvVars(t *testing.T) {
	vars := EnvVars()
	if vars["youtube"] != "YOUTUBE_API_KEY" {
		t.Errorf("EnvVars()[youtube] = %q, want %q", vars["youtube"], "YOUTUBE_API_KEY")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Provider = "mutated"
	if Lookup("youtube") == nil {
		t.Fatal("mutating All() result changed the registry")
	}
}
