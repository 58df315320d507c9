package dedupe

import (
	"reflect"
	"sort"
	"testing"
)

func TestResolveSurvivorKeepsCleanOriginal(t *testing.T) {
	group := []string{"IMG_1.jpg", "IMG_1_copy.jpg", "IMG_1_.jpg"}
	res := ResolveSurvivor(group)

	if res.Keep != "IMG_1.jpg" {
		t.Fatalf("keep = %q, want IMG_1.jpg", res.Keep)
	}
	want := []string{"IMG_1_copy.jpg", "IMG_1_.jpg"}
	sort.Strings(want)
	got := append([]string(nil), res.Remove...)
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("remove = %v, want %v", got, want)
	}
}

func TestResolveSurvivorFallsBackToSmallestPath(t *testing.T) {
	group := []string{"copy_of_IMG_2.jpg", "IMG_2_copy.jpg"}
	res := ResolveSurvivor(group)

	if res.Keep != "IMG_2_copy.jpg" {
		t.Fatalf("keep = %q, want lexicographically smallest path", res.Keep)
	}
	if len(res.Remove) != 1 || res.Remove[0] != "copy_of_IMG_2.jpg" {
		t.Fatalf("remove = %v", res.Remove)
	}
}

func TestResolveSurvivorMajorityStemTieBreaksOnFirstSeen(t *testing.T) {
	// Two stems with equal counts: the first encountered wins.
	group := []string{"beach.jpg", "dunes.jpg"}
	res := ResolveSurvivor(group)
	if res.Keep != "beach.jpg" {
		t.Fatalf("keep = %q, want beach.jpg", res.Keep)
	}
}

func TestResolveSurvivorTrailingUnderscoreCountsTowardStem(t *testing.T) {
	group := []string{"pic_.jpg", "pic__.jpg", "other.jpg"}
	res := ResolveSurvivor(group)
	// Both underscore variants clean to "pic", outvoting "other"; neither
	// is a copy variant, so the smaller path survives.
	if res.Keep != "pic_.jpg" {
		t.Fatalf("keep = %q, want pic_.jpg", res.Keep)
	}
}

func TestResolveSurvivorEmptyGroup(t *testing.T) {
	res := ResolveSurvivor(nil)
	if res.Keep != "" || len(res.Remove) != 0 {
		t.Fatalf("empty group should resolve to nothing: %+v", res)
	}
}

func TestIsCopyVariant(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"img_1234_copy.jpg", true},
		{"img_1234_.jpg", true},
		{"copy_of_img_1234.jpg", true},
		{"vacation copy 2.jpg", true},
		{"img_1234.jpg", false},
		{"img_5678.jpg", false},
	}
	for _, tc := range cases {
		if got := isCopyVariant(tc.path, "img_1234", "jpg"); got != tc.want {
			t.Fatalf("isCopyVariant(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
