package linkclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	type cleanTestCase struct {
		name     string
		input    string
		expected string
	}

	testGroups := map[string][]cleanTestCase{
		"Query Parameter": {
			{
				name:     "youtube short link",
				input:    "https://youtu.be/Vc-ByDGOuQE?si=qIy-ihfrRKmDAPZP",
				expected: "https://youtu.be/Vc-ByDGOuQE",
			},
			{
				name:     "youtube music",
				input:    "https://music.youtube.com/watch?v=nmYDYalgb5w&si=GGi18ac_fxnx4F1b",
				expected: "https://music.youtube.com/watch?v=nmYDYalgb5w",
			},
			{
				name:     "spotify track",
				input:    "https://open.spotify.com/track/1FYWnRofuIgJf62AnX8i5S?si=bf00147df50f4141",
				expected: "https://open.spotify.com/track/1FYWnRofuIgJf62AnX8i5S",
			},
			{
				name:     "multiple params keep order",
				input:    "https://music.youtube.com/watch?v=nmYDYalgb5w&si=GGi18ac_fxnx4F1b&list=RDAMVMnmYDYalgb5w",
				expected: "https://music.youtube.com/watch?v=nmYDYalgb5w&list=RDAMVMnmYDYalgb5w",
			},
			{
				name:     "generic order preserved",
				input:    "https://example.com/p?a=1&si=X&b=2",
				expected: "https://example.com/p?a=1&b=2",
			},
			{
				name:     "repeated si",
				input:    "https://www.youtube.com/watch?si=a&v=abc&si=b",
				expected: "https://www.youtube.com/watch?v=abc",
			},
			{
				name:     "si without value",
				input:    "https://open.spotify.com/album/x?si",
				expected: "https://open.spotify.com/album/x",
			},
			{
				name:     "fragment untouched",
				input:    "https://www.youtube.com/watch?v=abc&si=zz#t=30",
				expected: "https://www.youtube.com/watch?v=abc#t=30",
			},
			{
				name:     "other values keep their encoding",
				input:    "https://www.youtube.com/results?search_query=a%20b&si=zz",
				expected: "https://www.youtube.com/results?search_query=a%20b",
			},
		},
		"Path Embedded Token": {
			{
				name:     "encoded question mark on short host",
				input:    "https://youtu.be/ID%3Fsi=TOKEN",
				expected: "https://youtu.be/ID",
			},
			{
				name:     "path token ignored on other hosts",
				input:    "https://open.spotify.com/ID%3Fsi=TOKEN",
				expected: "https://open.spotify.com/ID%3Fsi=TOKEN",
			},
		},
		"No Change": {
			{
				name:     "no query",
				input:    "https://youtu.be/Vc-ByDGOuQE",
				expected: "https://youtu.be/Vc-ByDGOuQE",
			},
			{
				name:     "unrelated params",
				input:    "https://www.youtube.com/watch?v=abc&t=42",
				expected: "https://www.youtube.com/watch?v=abc&t=42",
			},
			{
				name:     "key that only starts with si",
				input:    "https://www.youtube.com/watch?v=abc&size=2&sig=x",
				expected: "https://www.youtube.com/watch?v=abc&size=2&sig=x",
			},
			{
				name:     "value named si",
				input:    "https://www.youtube.com/watch?v=si",
				expected: "https://www.youtube.com/watch?v=si",
			},
			{
				name:     "empty query kept verbatim",
				input:    "https://youtu.be/abc?",
				expected: "https://youtu.be/abc?",
			},
		},
		"Parse Failure": {
			{
				name:     "plain text",
				input:    "not a url",
				expected: "not a url",
			},
			{
				name:     "empty",
				input:    "",
				expected: "",
			},
			{
				name:     "bad escape",
				input:    "https://youtu.be/%zz?si=1",
				expected: "https://youtu.be/%zz?si=1",
			},
			{
				name:     "relative reference",
				input:    "/watch?v=abc&si=1",
				expected: "/watch?v=abc&si=1",
			},
		},
	}

	for groupName, cases := range testGroups {
		t.Run(groupName, func(t *testing.T) {
			t.Parallel()
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					t.Parallel()
					got := Clean(tc.input)
					assert.Equal(t, tc.expected, got)
					assert.Equal(t, got, Clean(got), "cleaning must be idempotent")
				})
			}
		})
	}
}

func TestNormalizerCustomParams(t *testing.T) {
	t.Parallel()

	n := NewNormalizer([]string{"si", "feature"}, []string{"youtu.be"})

	assert.Equal(t,
		"https://www.youtube.com/watch?v=abc",
		n.Clean("https://www.youtube.com/watch?feature=share&v=abc&si=1"))
	assert.Equal(t,
		"https://youtu.be/abc",
		n.Clean("https://youtu.be/abc%3Ffeature=share"))
}
