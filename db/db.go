package db

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/pkg/errors"

	"github.com/jsphweid/blockbeat/constants"
	"github.com/jsphweid/blockbeat/model"
)

// GetMidiMetadatas looks up song metadata by filename. Lookups are
// disabled when METADATA_ENDPOINT is unset; callers get an empty map.
func GetMidiMetadatas(filenames []string) (map[string]model.MidiMetadata, error) {
	res := make(map[string]model.MidiMetadata)

	if len(filenames) > 10 {
		return nil, errors.Errorf("can look up at most 10 filenames, got %v", len(filenames))
	}

	endpoint := constants.GetMetadataEndpoint()
	if endpoint == "" || len(filenames) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating DynamoDB session")
	}

	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			constants.MetadataTable: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, errors.Wrap(err, "batch get from DynamoDB")
	}

	for _, v := range dbres.Responses[constants.MetadataTable] {
		var s model.MidiMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			s.Year = uint(year)
		}
		if v["Artist"] != nil && v["Artist"].S != nil {
			s.Artist = *v["Artist"].S
		}
		if v["Release"] != nil && v["Release"].S != nil {
			s.Release = *v["Release"].S
		}
		if v["Title"] != nil && v["Title"].S != nil {
			s.Title = *v["Title"].S
		}
		if v["PK"] != nil && v["PK"].S != nil {
			res[*v["PK"].S] = s
		}
	}

	return res, nil
}
