/*
 * Copyright (c) 2026, InvestHub Ltd. (https://www.investhub.io).
 *
 * InvestHub Ltd. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package provider

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/investhub/cookie-consent-service/internal/system/config"
)

var (
	mongoClient *mongo.Client
	mongoOnce   sync.Once
	mongoErr    error
)

// GetAuditCollection returns the MongoDB collection holding the consent
// audit trail. The underlying client is created once and reused.
func GetAuditCollection() (*mongo.Collection, error) {

	auditConfig := config.GetRuntime().Config.AuditStore

	mongoOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		clientOptions := options.Client().ApplyURI(auditConfig.URI)
		client, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			mongoErr = err
			return
		}
		if err := client.Ping(ctx, nil); err != nil {
			mongoErr = err
			return
		}
		mongoClient = client
	})

	if mongoErr != nil {
		return nil, mongoErr
	}
	return mongoClient.Database(auditConfig.Database).Collection(auditConfig.Collection), nil
}
