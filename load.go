package ieograph

//spellchecker:words errors path filepath strings github ieograph internal prompt serialize
import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/FAU-CDI/ieograph/internal/prompt"
	"github.com/FAU-CDI/ieograph/internal/serialize"
)

var errWrongArgCount = errors.New("need one or two arguments")

// ParseArgs finds the input and (optional) output path within the command line arguments.
// It checks that the input is a regular file, but does not guarantee that its contents are loadable.
func ParseArgs(argv ...string) (input, output string, err error) {
	if len(argv) == 0 || len(argv) > 2 {
		return "", "", errWrongArgCount
	}

	input = argv[0]
	if len(argv) == 2 {
		output = argv[1]
	}

	ok, err := isFile(input)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", fmt.Errorf("%q is not a regular file", input)
	}
	return input, output, nil
}

// OutputPath returns the path to write output to.
// When output is empty, it is the input path with the extension replaced by the one of format.
func OutputPath(input, output string, format serialize.Format) (string, error) {
	if output != "" {
		return output, nil
	}

	path, err := filepath.Abs(input)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + format.Extension(), nil
}

// AvoidOverwrite makes sure that output does not overwrite input, unless the operator agrees.
// When the operator declines, they are asked for a different path, which is checked again.
//
// It returns the path to write to.
func AvoidOverwrite(p prompt.Prompter, input, output string, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = prompt.DefaultMaxAttempts
	}

	for range maxAttempts {
		same, err := samePath(input, output)
		if err != nil {
			return "", err
		}
		if !same {
			return output, nil
		}

		p.Say(fmt.Sprintf("The output path %q is the same as the input path. The input file is going to be overwritten.", output))
		overwrite, err := prompt.YesNo(p, "Are you sure to overwrite the input file? (yes/no): ", maxAttempts)
		if err != nil {
			return "", err
		}
		if overwrite {
			return output, nil
		}

		output, err = prompt.NonEmpty(p, "What is the new path? (absolute or relative path): ", maxAttempts)
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: output path still equals input path", prompt.ErrTooManyAttempts)
}

// samePath checks if a and b refer to the same file.
func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if absA == absB {
		return true, nil
	}

	statA, errA := os.Stat(absA)
	statB, errB := os.Stat(absB)
	if errA != nil || errB != nil {
		// a file that does not exist cannot be the other one
		return false, nil
	}
	return os.SameFile(statA, statB), nil
}

// isFile checks if path is a regular file.
func isFile(path string) (ok bool, err error) {
	stats, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return stats.Mode().IsRegular(), nil
}
