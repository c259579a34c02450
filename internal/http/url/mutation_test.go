package url

import "testing"

func TestMutate(t *testing.T) {
	type testCase struct {
		Name     string
		Base     string
		Funcs    []MutationFunc
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "root base url",
			Base:     "/",
			Funcs:    []MutationFunc{WithPath("results")},
			Expected: "/results",
		},
		{
			Name:     "prefixed base url",
			Base:     "https://example.com/app/",
			Funcs:    []MutationFunc{WithPath("/feedback", "fields")},
			Expected: "https://example.com/app/feedback/fields",
		},
		{
			Name:     "query values",
			Base:     "/results?page=1",
			Funcs:    []MutationFunc{WithValues("page", "2")},
			Expected: "/results?page=2",
		},
		{
			Name:     "formatted path",
			Base:     "/",
			Funcs:    []MutationFunc{WithPathf("/feedback/fields/%s", "name")},
			Expected: "/feedback/fields/name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			base, err := Parse(tc.Base)
			if err != nil {
				t.Fatalf("%+v", err)
			}

			got := Mutate(base, tc.Funcs...).String()
			if got != tc.Expected {
				t.Errorf("expected '%s', got '%s'", tc.Expected, got)
			}

			if base.String() != tc.Base {
				t.Errorf("expected base url to be left untouched, got '%s'", base.String())
			}
		})
	}
}
