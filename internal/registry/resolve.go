//spellchecker:words registry
package registry

//spellchecker:words errors strconv strings github ieograph internal ontology prompt
import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/FAU-CDI/ieograph/internal/ontology"
	"github.com/FAU-CDI/ieograph/internal/prompt"
)

var (
	// ErrUnknownRegistry indicates that the registry of a namespace is neither configured nor could be asked for.
	ErrUnknownRegistry = errors.New("unknown registry")

	// ErrInvalidVersion indicates that no valid version number could be determined.
	ErrInvalidVersion = errors.New("invalid version number")
)

// ISIC registry constants
const (
	ISICRegistryID    = "ISIC"
	ISICRegistryLabel = "International Standard Industrial Classification"
)

// Resolver determines database identities from source metadata.
type Resolver struct {
	Table Table // known registries, nil means DefaultTable()

	Prompter    prompt.Prompter // asked for missing information, nil means never ask
	MaxAttempts int             // maximum attempts per question, see [prompt.Validated]
}

func (r *Resolver) prompter() prompt.Prompter {
	if r.Prompter == nil {
		return prompt.Batch{}
	}
	return r.Prompter
}

// MasterData resolves the identity of an EcoSpold2 master data file with the given xml namespace and release.
//
// When the namespace is not known, the registry id and label are asked for.
// The answers are remembered for subsequent calls.
func (r *Resolver) MasterData(namespace, majorRelease, minorRelease string) (Identity, error) {
	if r.Table == nil {
		r.Table = DefaultTable()
	}

	entry, ok := r.Table.Lookup(namespace)
	if !ok {
		var err error
		entry, err = r.askRegistry(namespace)
		if err != nil {
			return Identity{}, err
		}
		r.Table[namespace] = entry
	}

	return Identity{
		Scheme:    EcoSpold2,
		Namespace: ontology.Namespace(strings.ToLower(namespace) + "#"),

		RegistryID:    entry.ID,
		RegistryLabel: entry.Label,

		Major: majorRelease,
		Minor: minorRelease,
	}, nil
}

func (r *Resolver) askRegistry(namespace string) (entry Entry, err error) {
	p := r.prompter()
	p.Say(fmt.Sprintf("The registry of the namespace %q is unknown. Please provide it, or add it to a registry file.", namespace))

	entry.Namespace = namespace

	id, err := prompt.NonEmpty(p, "What is the ID of the registry? ", r.MaxAttempts)
	if err != nil {
		return entry, fmt.Errorf("%w for namespace %q: %w", ErrUnknownRegistry, namespace, err)
	}
	entry.ID = strings.ToLower(id)

	entry.Label, err = prompt.NonEmpty(p, "What is the registry label? ", r.MaxAttempts)
	if err != nil {
		return entry, fmt.Errorf("%w for namespace %q: %w", ErrUnknownRegistry, namespace, err)
	}
	return entry, nil
}

// Classification resolves the identity of an ISIC classification with the given revision.
// When revision is not positive, it is asked for.
func (r *Resolver) Classification(revision int) (Identity, error) {
	if revision <= 0 {
		var err error
		revision, err = prompt.PositiveInt(r.prompter(), "What is the version number of the ISIC Rev classification? ", r.MaxAttempts)
		if err != nil {
			return Identity{}, fmt.Errorf("%w: %w", ErrInvalidVersion, err)
		}
	}

	return Identity{
		Scheme:    ISIC,
		Namespace: ontology.ISIC,

		RegistryID:    ISICRegistryID,
		RegistryLabel: ISICRegistryLabel,

		Major: strconv.Itoa(revision),
	}, nil
}
