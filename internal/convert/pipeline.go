//spellchecker:words convert
package convert

//spellchecker:words context github ieograph internal crid registry source stats
import (
	"context"

	"github.com/FAU-CDI/ieograph/internal/crid"
	"github.com/FAU-CDI/ieograph/internal/registry"
	"github.com/FAU-CDI/ieograph/internal/source"
	"github.com/FAU-CDI/ieograph/internal/stats"
)

// Classification converts the ISIC classification in the file at input.
// A revision <= 0 means that the revision is asked for.
func Classification(ctx context.Context, input string, revision int, opts Options) (result Result, err error) {
	codes, err := read(&opts, input, source.ReadClassification)
	if err != nil {
		return result, err
	}

	var id registry.Identity
	if err := opts.Stats.DoStage(stats.StageResolve, func() (err error) {
		id, err = opts.resolver().Classification(revision)
		return err
	}); err != nil {
		return result, err
	}

	output, err := opts.output(input)
	if err != nil {
		return result, err
	}

	g, products, err := opts.build(input, len(codes), func(builder *crid.Builder, done func(int)) error {
		for i, code := range codes {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := builder.Classification(id, code); err != nil {
				return err
			}
			done(i + 1)
		}
		return nil
	})
	if err != nil {
		return result, err
	}
	result.Products = products

	return result, opts.finish(ctx, g, output, &result)
}

// MasterData converts the EcoSpold2 master data file at input.
//
// Activity names, intermediate and elementary exchanges are all mapped, in this order.
func MasterData(ctx context.Context, input string, opts Options) (result Result, err error) {
	md, err := read(&opts, input, source.ReadMasterData)
	if err != nil {
		return result, err
	}

	result.Tags = md.Tags()
	for _, tag := range result.Tags {
		opts.Stats.Log("found master data", "tag", tag, "file", input)
	}

	var id registry.Identity
	if err := opts.Stats.DoStage(stats.StageResolve, func() (err error) {
		id, err = opts.resolver().MasterData(md.Namespace, md.MajorRelease, md.MinorRelease)
		return err
	}); err != nil {
		return result, err
	}

	output, err := opts.output(input)
	if err != nil {
		return result, err
	}

	total := len(md.Activities) + len(md.IntermediateExchanges) + len(md.ElementaryExchanges)
	g, products, err := opts.build(input, total, func(builder *crid.Builder, done func(int)) error {
		count := 0
		step := func() error {
			count++
			done(count)
			return ctx.Err()
		}

		for _, activity := range md.Activities {
			if err := builder.Activity(id, activity); err != nil {
				return err
			}
			if err := step(); err != nil {
				return err
			}
		}
		for _, exchange := range md.IntermediateExchanges {
			if err := builder.IntermediateExchange(id, exchange); err != nil {
				return err
			}
			if err := step(); err != nil {
				return err
			}
		}
		for _, exchange := range md.ElementaryExchanges {
			if err := builder.ElementaryExchange(id, exchange); err != nil {
				return err
			}
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return result, err
	}
	result.Products = products

	return result, opts.finish(ctx, g, output, &result)
}
