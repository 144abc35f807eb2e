/*
Package factory builds test records for AttrModel types.

A Factory uses nothing but plain construction and ordinary writer calls — no
special hooks on the model side. Configuration chains in the builder style:

	f := factory.New(user).
	    WithValue("name", "fixture").
	    WithGenerator("rating", func(n int) any { return 1000 + n }).
	    WithAutoFill()

	rec := f.MustBuild()
	recs, err := f.BuildList(10)

WithAutoFill derives values from each definition's advisory hints: format
"uuid" yields a fresh google/uuid string, "date-time" a strfmt.DateTime,
"email" a sequenced address; type hints "string", "integer", "number" and
"boolean" get sequenced or zero values. Attributes without a usable hint are
left unset.
*/
package factory
