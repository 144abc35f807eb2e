/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package ddbexport converts records to and from DynamoDB AttributeValue maps.
//
// The package is a codec, not a datastore: it produces the item map a caller
// would hand to a DynamoDB client, and reads one back. Each marshaled item
// carries an injected EntityType attribute naming the record's model type, so
// heterogeneous items can be resolved back to their models through an
// attrmodel.Models manager.
package ddbexport

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/attrmodel"
)

// EntityTypeAttribute is the item attribute carrying the model type name.
const EntityTypeAttribute = "EntityType"

// Marshal converts a record's attribute snapshot into a DynamoDB item map and
// injects the EntityType attribute. Unset declared attributes marshal as NULL
// so every effective attribute name is present on the item.
func Marshal(r *attrmodel.Record) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(r.AttributeMap())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s record: %w", r.Model().Name(), err)
	}
	item[EntityTypeAttribute] = &types.AttributeValueMemberS{Value: r.Model().Name()}
	return item, nil
}

// Unmarshal converts a DynamoDB item map back into a record of the given
// model type. Only attributes the item actually carries are written; NULL
// values are skipped so they keep reading as unset.
func Unmarshal(item map[string]types.AttributeValue, mt *attrmodel.ModelType) (*attrmodel.Record, error) {
	var raw map[string]any
	if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item for model %s: %w", mt.Name(), err)
	}
	delete(raw, EntityTypeAttribute)

	rec := mt.New()
	for name, value := range raw {
		if value == nil {
			continue
		}
		rec.WriteAttribute(name, value)
	}
	return rec, nil
}

// Resolve looks up the item's EntityType attribute in the model manager and
// unmarshals the item against the model it names.
func Resolve(item map[string]types.AttributeValue, models attrmodel.Models) (*attrmodel.Record, error) {
	attr, ok := item[EntityTypeAttribute]
	if !ok {
		return nil, fmt.Errorf("missing %s attribute in item", EntityTypeAttribute)
	}

	var entityType string
	if err := attributevalue.Unmarshal(attr, &entityType); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", EntityTypeAttribute, err)
	}

	mt, err := models.GetModel(entityType)
	if err != nil {
		return nil, err
	}
	return Unmarshal(item, mt)
}
