// SPDX-License-Identifier: MPL-2.0

package typegen

// Fixed name pools for corpus synthesis. Pools are package constants in
// spirit; they are never mutated at runtime. Keeping them fixed (rather
// than configurable) is what makes profile-level "empty name pool" errors
// impossible.
var (
	// Services seed blueprint names; the orchestrator rotates through the
	// pool and suffixes repeats.
	Services = []string{
		"checkout", "auth", "payments", "orders", "inventory", "shipping",
		"notifications", "analytics", "search", "recommendations", "billing",
		"users", "profiles", "catalog", "cart", "gateway", "messaging",
		"scheduler", "monitoring", "logging", "cache", "storage", "cdn",
		"ml_inference", "etl_pipeline", "data_warehouse", "event_bus",
		"rate_limiter", "circuit_breaker", "load_balancer", "dns_resolver",
		"session_manager", "token_service", "audit_log", "webhook_relay",
		"media_processor", "pdf_generator", "email_sender", "sms_gateway",
		"push_notifications", "feature_flags", "ab_testing", "config_server",
		"secrets_manager", "certificate_authority", "vpn_gateway", "firewall",
		"intrusion_detection", "compliance_checker", "backup_service", "disaster_recovery",
	}

	// Orgs and Teams drive the expectation directory fan-out.
	Orgs = []string{"acme", "globex", "initech", "hooli", "piedpiper", "waystar", "delos", "massive_dynamic"}

	Teams = []string{
		"platform", "payments", "growth", "infrastructure", "mobile",
		"backend", "frontend", "data", "security", "reliability",
		"devops", "sre", "ml", "search", "messaging",
		"identity", "commerce", "analytics", "observability", "networking",
	}

	// Envs feed alias value sets alongside the extra alias environments.
	Envs = []string{"production", "staging", "development", "canary"}

	// Vendor is the primary vendor tag for benchmarking.
	Vendor = "datadog"

	// Metrics key the indicator query templates.
	Metrics = []string{
		"http.requests", "http.latency.p50", "http.latency.p95", "http.latency.p99",
		"http.errors", "grpc.requests", "grpc.latency", "grpc.errors",
		"db.queries", "db.latency", "db.connections", "db.errors",
		"cache.hits", "cache.misses", "cache.latency", "cache.evictions",
		"queue.messages", "queue.latency", "queue.depth", "queue.errors",
		"cpu.utilization", "memory.usage", "disk.io", "network.throughput",
	}

	// statuses are the OneOf(String) candidate values.
	statuses = []string{"active", "inactive", "pending", "archived", "draft", "published"}

	// aliasEnvs extend Envs for alias value sets.
	aliasEnvs = []string{"qa", "test", "demo", "perf"}
)
