package app

import "testing"

func TestRuneCommand(t *testing.T) {
	cases := []struct {
		r    rune
		want Command
		ok   bool
	}{
		{r: ' ', want: Command{Kind: CommandTogglePause}, ok: true},
		{r: 'n', want: Command{Kind: CommandStep}, ok: true},
		{r: 'N', want: Command{Kind: CommandStep}, ok: true},
		{r: 'r', want: Command{Kind: CommandReseed}, ok: true},
		{r: 'q', want: Command{Kind: CommandQuit}, ok: true},
		{r: '0', want: Command{Kind: CommandGliders, N: 0}, ok: true},
		{r: '7', want: Command{Kind: CommandGliders, N: 7}, ok: true},
		{r: 'x', ok: false},
	}
	for _, tc := range cases {
		got, ok := RuneCommand(tc.r)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("RuneCommand(%q) = %+v,%v, expected %+v,%v", tc.r, got, ok, tc.want, tc.ok)
		}
	}
}
