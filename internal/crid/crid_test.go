//spellchecker:words crid
package crid_test

//spellchecker:words errors testing github ieograph internal crid ontology registry triplestore graph term stretchr testify assert require
import (
	"errors"
	"fmt"
	"testing"

	"github.com/FAU-CDI/ieograph/internal/crid"
	"github.com/FAU-CDI/ieograph/internal/ontology"
	"github.com/FAU-CDI/ieograph/internal/registry"
	"github.com/FAU-CDI/ieograph/internal/triplestore/graph"
	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cspell:words ecoinvent ecospold

func ecoInvent(t *testing.T) registry.Identity {
	t.Helper()

	var r registry.Resolver
	id, err := r.MasterData(registry.EcoInventNamespace, "3", "1")
	require.NoError(t, err)
	return id
}

func isic(t *testing.T) registry.Identity {
	t.Helper()

	var r registry.Resolver
	id, err := r.Classification(4)
	require.NoError(t, err)
	return id
}

func ExampleSanitize() {
	fmt.Println(crid.Sanitize("Growing of cereals (except rice), leguminous crops and oil seeds"))
	fmt.Println(crid.Sanitize("Copper (99%)"))
	fmt.Println(crid.Sanitize("a-b.c!d$e'f#g+h>i*j`k\\l"))

	// Output: Growing_of_cereals_except_rice,_leguminous_crops_and_oil_seeds
	// Copper_99%
	// a_b_c_d_e_f_g_h_i_j_k_l
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	for _, label := range []string{
		"Growing of cereals (except rice)",
		"Manufacture of basic iron & steel",
		"a [b] {c} (d) e-f",
		"",
	} {
		once := crid.Sanitize(label)
		assert.Equal(t, once, crid.Sanitize(once), "Sanitize(%q) is not idempotent", label)
		assert.NotContains(t, once, " ")
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     crid.ExchangeKind
		property bool
		unit     string
		want     crid.ProductType
	}{
		{crid.Intermediate, true, "kWh", crid.MaterialGood},
		{crid.Intermediate, false, "m3", crid.MaterialGood},
		{crid.Intermediate, false, "unit", crid.MaterialGood},
		{crid.Intermediate, false, "kWh", crid.Service},
		{crid.Intermediate, false, "metric ton*km", crid.Service},
		{crid.Intermediate, false, "kg", crid.ToSort},
		{crid.Intermediate, false, "MJ", crid.ToSort},

		{crid.Elementary, true, "kg", crid.MaterialGood},
		{crid.Elementary, false, "km", crid.MaterialGood},
		{crid.Elementary, false, "kWh", crid.ToSort},
		{crid.Elementary, false, "ha", crid.ToSort},
		{crid.Elementary, false, "kg", crid.ToSort},
	}
	for _, tt := range tests {
		got := crid.Classify(tt.kind, tt.property, tt.unit)
		assert.Equal(t, tt.want, got, "Classify(%d, %v, %q)", tt.kind, tt.property, tt.unit)
	}
}

func TestMapActivity(t *testing.T) {
	t.Parallel()

	id := ecoInvent(t)
	g := graph.NewMemory()

	err := crid.MapActivity(g, id, crid.Activity{
		ID: "88d6c0aa-0053-4367-b0be-05e4b49ff3c5",
		Names: []crid.Name{
			{Language: "en", Text: "copper production, primary"},
			{Language: "de", Text: "Kupferproduktion, primär"},
		},
	})
	require.NoError(t, err)

	const eco = ontology.Namespace("http://www.ecoinvent.org/ecospold02#")
	node := eco.Term("88d6c0aa-0053-4367-b0be-05e4b49ff3c5v3_1")
	entity := eco.Term("88d6c0aa-0053-4367-b0be-05e4b49ff3c5")
	database := eco.Term("de659012-50c4-4e96-b54a-fc781bf987abv3_1")

	for _, want := range []term.Triple{
		term.Link(node, ontology.Type, eco.Term("activityId")),
		term.Link(entity, ontology.Type, eco.Term("activity_name")),
		term.Link(node, ontology.HasPart.IRI(), database),
		term.Link(database, ontology.PartOf.IRI(), node),
		term.Link(node, ontology.HasPart.IRI(), entity),
		term.Link(entity, ontology.PartOf.IRI(), node),
		term.Text(node, ontology.Label, "EcoInventv3.1:copper production, primary", "en"),
		term.Text(node, ontology.Label, "EcoInventv3.1:Kupferproduktion, primär", "de"),
		term.Text(entity, ontology.Label, "copper production, primary", "en"),
	} {
		has, err := g.Has(want)
		require.NoError(t, err)
		assert.True(t, has, "missing %s", want)
	}
	assert.Equal(t, 10, g.Len())
}

func TestMapClassification(t *testing.T) {
	t.Parallel()

	id := isic(t)
	g := graph.NewMemory()

	code := crid.ClassificationCode{Code: "0111", Label: "Growing of cereals (except rice), leguminous crops and oil seeds"}
	require.NoError(t, crid.MapClassification(g, id, code))

	node := ontology.ISIC.Term("ISIC_Rev4_0111")
	entity := ontology.ISIC.Term("Growing_of_cereals_except_rice,_leguminous_crops_and_oil_seeds")
	database := ontology.ISIC.Term("ISIC_Rev4")

	for _, want := range []term.Triple{
		term.Link(node, ontology.Type, ontology.ISIC.Term("classification")),
		term.Link(entity, ontology.Type, ontology.ISIC.Term("industrial_sector_label")),
		term.Link(node, ontology.HasPart.IRI(), database),
		term.Link(database, ontology.PartOf.IRI(), node),
		term.Link(node, ontology.HasPart.IRI(), entity),
		term.Link(entity, ontology.PartOf.IRI(), node),
		term.Text(node, ontology.Label, "ISIC_Rev4:0111 "+code.Label, "en"),
		term.Text(entity, ontology.Label, code.Label, "en"),
	} {
		has, err := g.Has(want)
		require.NoError(t, err)
		assert.True(t, has, "missing %s", want)
	}
	assert.Equal(t, 8, g.Len())

	// mapping the same record twice does not add anything
	require.NoError(t, crid.MapClassification(g, id, code))
	assert.Equal(t, 8, g.Len())

	t.Run("missing label", func(t *testing.T) {
		t.Parallel()

		err := crid.MapClassification(graph.NewMemory(), id, crid.ClassificationCode{Code: "0112"})
		assert.ErrorIs(t, err, crid.ErrMissingField)

		var re *crid.RecordError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, "label", re.Field)
	})
}

func TestMapIntermediateExchange(t *testing.T) {
	t.Parallel()

	id := ecoInvent(t)
	const eco = ontology.Namespace("http://www.ecoinvent.org/ecospold02#")

	t.Run("service by unit", func(t *testing.T) {
		t.Parallel()

		g := graph.NewMemory()
		product, err := crid.MapIntermediateExchange(g, id, crid.IntermediateExchange{Exchange: crid.Exchange{
			ID:       "66c93e71-f32b-4591-901c-55395db5c132",
			Names:    []crid.Name{{Language: "en", Text: "electricity, high voltage"}},
			UnitName: "kWh",
			HasUnit:  true,
		}})
		require.NoError(t, err)
		assert.Equal(t, crid.Service, product)

		denoted := eco.Term("66c93e71-f32b-4591-901c-55395db5c132t_prod")
		for _, want := range []term.Triple{
			term.Link(eco.Term("66c93e71-f32b-4591-901c-55395db5c132"), ontology.Denotes.IRI(), denoted),
			term.Link(denoted, ontology.Type, ontology.Service.IRI()),
			term.Text(denoted, ontology.Label, "electricity, high voltage", "en"),
			term.Link(eco.Term("66c93e71-f32b-4591-901c-55395db5c132v3_1"), ontology.Type, eco.Term("interm_exch_Id")),
		} {
			has, err := g.Has(want)
			require.NoError(t, err)
			assert.True(t, has, "missing %s", want)
		}
	})

	t.Run("unclassified unit is declared", func(t *testing.T) {
		t.Parallel()

		g := graph.NewMemory()
		product, err := crid.MapIntermediateExchange(g, id, crid.IntermediateExchange{Exchange: crid.Exchange{
			ID:       "0e4fa8b3-2e4b-4e47-a3e3-8a3f1a7b0f10",
			UnitName: "kg",
			HasUnit:  true,
		}})
		require.NoError(t, err)
		assert.Equal(t, crid.ToSort, product)

		has, err := g.Has(term.Text(ontology.ToSort.IRI(), ontology.Comment, ontology.ToSortComment, "en"))
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("missing unit", func(t *testing.T) {
		t.Parallel()

		_, err := crid.MapIntermediateExchange(graph.NewMemory(), id, crid.IntermediateExchange{Exchange: crid.Exchange{
			ID: "0e4fa8b3-2e4b-4e47-a3e3-8a3f1a7b0f10",
		}})
		assert.ErrorIs(t, err, crid.ErrMissingField)
	})

	t.Run("property without unit", func(t *testing.T) {
		t.Parallel()

		product, err := crid.MapIntermediateExchange(graph.NewMemory(), id, crid.IntermediateExchange{Exchange: crid.Exchange{
			ID:          "0e4fa8b3-2e4b-4e47-a3e3-8a3f1a7b0f10",
			HasProperty: true,
		}})
		require.NoError(t, err)
		assert.Equal(t, crid.MaterialGood, product)
	})
}

func TestMapElementaryExchange(t *testing.T) {
	t.Parallel()

	id := ecoInvent(t)
	const eco = ontology.Namespace("http://www.ecoinvent.org/ecospold02#")

	g := graph.NewMemory()
	product, err := crid.MapElementaryExchange(g, id, crid.ElementaryExchange{
		Exchange: crid.Exchange{
			ID: "5f7aad3d-566c-4d0d-ad59-e765f971aa0f",
			Names: []crid.Name{
				{Language: "en", Text: "Copper"},
				{Language: "de", Text: "Kupfer"},
			},
			UnitName: "kWh",
			HasUnit:  true,
		},
		Compartments:    map[string]string{"en": "air", "de": "Luft"},
		Subcompartments: map[string]string{"en": "urban air close to ground"},
	})
	require.NoError(t, err)
	assert.Equal(t, crid.ToSort, product, "elementary exchanges are never services")

	entity := eco.Term("5f7aad3d-566c-4d0d-ad59-e765f971aa0f")
	has, err := g.Has(term.Text(entity, ontology.Label, "Copper, in air, urban air close to ground", "en"))
	require.NoError(t, err)
	assert.True(t, has)

	has, err = g.Has(term.Text(entity, ontology.Label, "Copper", "en"))
	require.NoError(t, err)
	assert.False(t, has, "plain name is not used")

	triples, err := g.Triples()
	require.NoError(t, err)
	for _, triple := range triples {
		assert.NotEqual(t, "de", triple.Literal.Language, "language without subcompartment is skipped")
	}
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	g := graph.NewMemory()
	b, err := crid.NewBuilder(g)
	require.NoError(t, err)

	upper := g.Len()
	assert.Equal(t, len(ontology.UpperTriples()), upper)

	id := ecoInvent(t)
	const eco = ontology.Namespace("http://www.ecoinvent.org/ecospold02#")

	for _, uuid := range []string{"88d6c0aa-0053-4367-b0be-05e4b49ff3c5", "9a1d5b0c-6a3e-4d3f-8a52-0d2b3a1c9e77"} {
		require.NoError(t, b.Activity(id, crid.Activity{ID: uuid, Names: []crid.Name{{Language: "en", Text: uuid}}}))
	}
	require.NoError(t, b.IntermediateExchange(id, crid.IntermediateExchange{Exchange: crid.Exchange{
		ID: "66c93e71-f32b-4591-901c-55395db5c132", UnitName: "hour", HasUnit: true,
	}}))

	assert.Equal(t, map[crid.ProductType]int{crid.Service: 1}, b.Products)
	assert.Equal(t, 1, b.Databases())

	database := eco.Term("de659012-50c4-4e96-b54a-fc781bf987abv3_1")
	for _, want := range []term.Triple{
		term.Link(database, ontology.Type, ontology.RegistryVersion.IRI()),
		term.Link(database, ontology.Denotes.IRI(), eco.Term("de659012-50c4-4e96-b54a-fc781bf987ab")),
		term.Link(eco.Term("activityId"), ontology.SubClassOf, ontology.ActivityCRID.IRI()),
		term.Link(eco.Term("activity_name"), ontology.SubClassOf, ontology.ReferenceActivity.IRI()),
		term.Link(eco.Term("interm_exch_Id"), ontology.SubClassOf, ontology.ProductCRID.IRI()),
		term.Link(eco.Term("interm_exch_name"), ontology.SubClassOf, ontology.ReferenceProduct.IRI()),
	} {
		has, err := g.Has(want)
		require.NoError(t, err)
		assert.True(t, has, "missing %s", want)
	}
}
