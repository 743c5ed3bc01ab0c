// Package lib groups supporting modules that do not fit strictly into the
// request/service/repository layers.
//
// It contains background job processing (Redis/Asynq) for post audit
// events and the sample-data seeder used at startup.
package lib
