package scan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]struct {
		args       []string
		want       Config
		wantStderr string
	}{
		"empty": {
			args: nil,
			want: Config{},
		},
		"assignments then program": {
			args: []string{"A=1", "B=2=3", "prog", "--help", "-i"},
			want: Config{
				Sets:    []Assignment{{"A", "1"}, {"B", "2=3"}},
				Program: []string{"prog", "--help", "-i"},
			},
		},
		"program first captures everything": {
			args: []string{"prog", "A=1", "--null", "-x"},
			want: Config{
				Program: []string{"prog", "A=1", "--null", "-x"},
			},
		},
		"bare dash implies ignore-environment": {
			args: []string{"-", "A=1", "prog", "arg"},
			want: Config{
				ClearEnv: true,
				Sets:     []Assignment{{"A", "1"}},
				Program:  []string{"prog", "arg"},
			},
		},
		"bare dash then option-shaped program": {
			args: []string{"-", "-i"},
			want: Config{
				ClearEnv: true,
				Program:  []string{"-i"},
			},
		},
		"short flags": {
			args: []string{"-i", "-0"},
			want: Config{ClearEnv: true, NullTerminated: true},
		},
		"short cluster": {
			args: []string{"-i0"},
			want: Config{ClearEnv: true, NullTerminated: true},
		},
		"cluster members consume following raw tokens": {
			args: []string{"-fu", "vars.ini", "HOME"},
			want: Config{
				Files:  []string{"vars.ini"},
				Unsets: []string{"HOME"},
			},
		},
		"long flags": {
			args: []string{"--ignore-environment", "--null"},
			want: Config{ClearEnv: true, NullTerminated: true},
		},
		"long options with arguments": {
			args: []string{"--file", "a.ini", "--file", "-", "--unset", "PATH"},
			want: Config{
				Files:  []string{"a.ini", "-"},
				Unsets: []string{"PATH"},
			},
		},
		"missing file argument is reported and skipped": {
			args:       []string{"--file"},
			want:       Config{},
			wantStderr: "env: this option requires an argument: --file\n",
		},
		"missing unset argument in cluster": {
			args:       []string{"-u"},
			want:       Config{},
			wantStderr: "env: this option requires an argument: -u\n",
		},
		"option-shaped token consumed as argument": {
			args: []string{"--unset", "--file", "b.ini", "A=1"},
			want: Config{
				Unsets:  []string{"--file"},
				Program: []string{"b.ini", "A=1"},
			},
		},
		"cluster continues after missing argument": {
			args:       []string{"-u0"},
			want:       Config{NullTerminated: true},
			wantStderr: "env: this option requires an argument: -u0\n",
		},
		"split-string short standalone": {
			args: []string{"-S", "echo hi"},
			want: Config{Program: []string{"echo", "hi"}},
		},
		"split-string short attached": {
			args: []string{"-Secho hi"},
			want: Config{Program: []string{"echo", "hi"}},
		},
		"split-string long standalone": {
			args: []string{"--split-string", "a  b\tc"},
			want: Config{Program: []string{"a", "b", "c"}},
		},
		"split-string long attached": {
			args: []string{"--split-string echo hi"},
			want: Config{Program: []string{"echo", "hi"}},
		},
		"split-string does not begin capture": {
			args: []string{"-Sa b", "-i"},
			want: Config{
				ClearEnv: true,
				Program:  []string{"a", "b"},
			},
		},
		"program name after split-string becomes an argument": {
			args: []string{"-Secho hi", "myprog", "arg"},
			want: Config{Program: []string{"echo", "hi", "myprog", "arg"}},
		},
		"split-string missing argument": {
			args:       []string{"-S"},
			want:       Config{},
			wantStderr: "env: this option requires an argument: -S\n",
		},
		"split-string with null and no program token": {
			args: []string{"-0", "-Sa b"},
			want: Config{
				NullTerminated: true,
				Program:        []string{"a", "b"},
			},
		},
		"empty name is not an assignment": {
			args: []string{"=foo", "bar"},
			want: Config{Program: []string{"=foo", "bar"}},
		},
		"value may be empty": {
			args: []string{"A="},
			want: Config{Sets: []Assignment{{"A", ""}}},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			var stderr bytes.Buffer
			got, err := Parse(tc.args, &stderr)

			require.NoError(t, err)
			assert.Equal(t, &tc.want, got)
			assert.Equal(t, tc.wantStderr, stderr.String())
		})
	}
}

func TestParse_help(t *testing.T) {
	var stderr bytes.Buffer
	_, err := Parse([]string{"--help"}, &stderr)
	assert.ErrorIs(t, err, ErrHelp)
}

func TestParse_version(t *testing.T) {
	var stderr bytes.Buffer
	_, err := Parse([]string{"--version"}, &stderr)
	assert.ErrorIs(t, err, ErrVersion)
}

func TestParse_helpAfterProgramIsLiteral(t *testing.T) {
	var stderr bytes.Buffer
	got, err := Parse([]string{"A=1", "--help"}, &stderr)

	require.NoError(t, err)
	assert.Equal(t, []string{"--help"}, got.Program)
}

func TestParse_invalidLongOption(t *testing.T) {
	cases := map[string]string{
		"bogus":        "--bogus",
		"double dash":  "--",
		"with payload": "--bogus=1",
	}

	for tn, opt := range cases {
		t.Run(tn, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := Parse([]string{opt}, &stderr)

			var invalidErr *InvalidOptionError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, opt, invalidErr.Option)
			assert.Equal(t, `invalid option "`+opt+`"`, invalidErr.Error())
		})
	}
}

func TestParse_illegalShortFlag(t *testing.T) {
	var stderr bytes.Buffer
	_, err := Parse([]string{"-i0x"}, &stderr)

	var illegalErr *IllegalFlagError
	require.ErrorAs(t, err, &illegalErr)
	assert.Equal(t, 'x', illegalErr.Flag)
	assert.Equal(t, "illegal option -- x", illegalErr.Error())
}

func TestParse_nullWithCommand(t *testing.T) {
	cases := map[string][]string{
		"program directly":         {"-0", "prog"},
		"program after assignment": {"-0", "A=1", "prog"},
		"long null":                {"--null", "prog", "arg"},
	}

	for tn, args := range cases {
		t.Run(tn, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := Parse(args, &stderr)
			assert.ErrorIs(t, err, ErrNullWithCommand)
		})
	}
}

func TestSplit(t *testing.T) {
	cases := map[string]struct {
		in   string
		want []string
	}{
		"simple":              {"a b c", []string{"a", "b", "c"}},
		"mixed whitespace":    {" a\t b \n c ", []string{"a", "b", "c"}},
		"empty":               {"", []string{}},
		"whitespace only":     {" \t ", []string{}},
		"no quote handling":   {`a "b c"`, []string{"a", `"b`, `c"`}},
		"single token":        {"prog", []string{"prog"}},
		"equals pass through": {"=a b=1", []string{"=a", "b=1"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.in))
		})
	}
}
