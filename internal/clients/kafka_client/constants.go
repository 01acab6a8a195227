package kafka_client

import "time"

const (
	KAFKA_TOPIC_CAMPAIGN_REQUESTS = "campaign-requests" // batched campaign analysis requests
	KAFKA_TOPIC_CAMPAIGN_RESULTS  = "campaign-results"  // batched analysis results
)

const (
	BATCH_SIZE    = 50
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)
