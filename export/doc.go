/*
Package export defines the serialization surface for AttrModel records.

An exporter consumes a record's attribute snapshot — every effective attribute
name, with nil for unset entries, plus everything explicitly assigned — and
renders it in some encoding. Key ordering is the exporter's business; the core
does not dictate it.

Implementations:
  - jsonexport: encoding/json output
  - yamlexport: gopkg.in/yaml.v3 output
  - ddbexport: DynamoDB AttributeValue maps with an injected EntityType
    attribute for polymorphic round-trips

All implementations are codecs only. None of them owns a network client or a
table; persistence is out of scope for this library.
*/
package export
