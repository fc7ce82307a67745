package schlep

import (
	"github.com/schlep-engine/go-sdk/api"
	"github.com/schlep-engine/go-sdk/util"
)

type ErrorResponse = api.ErrorResponse
type ListParams = api.ListParams
type ProcessingJob = api.ProcessingJob
type Transformation = api.Transformation
type SchemaValidation = api.SchemaValidation
type Pipeline = api.Pipeline
type TrainingJob = api.TrainingJob
type Deployment = api.Deployment
type Prediction = api.Prediction
type QueryResult = api.QueryResult
type Report = api.Report
type Dataset = api.Dataset
type TextExtraction = api.TextExtraction
type TableExtraction = api.TableExtraction
type ImageExtraction = api.ImageExtraction
type OCRResult = api.OCRResult
type QualityAssessment = api.QualityAssessment
type QualityIssue = api.QualityIssue
type QualityRule = api.QualityRule
type DataValidation = api.DataValidation
type ValidationCheck = api.ValidationCheck
type FileUpload = api.FileUpload
type FileInfo = api.FileInfo
type Metrics = api.Metrics
type Health = api.Health
type Alert = api.Alert
type UserProfile = api.UserProfile
type APIKey = api.APIKey
type UserSummary = api.UserSummary
type SystemStats = api.SystemStats
type UploadResult = api.UploadResult
type TrainResult = api.TrainResult
type DeployResult = api.DeployResult
type JobStatus = api.JobStatus
type StreamConfig = api.StreamConfig
type Event = api.Event
type Logger = util.Logger
type DiscardLogger = util.DiscardLogger

func SetLogger(l Logger) { util.SetLogger(l) }
