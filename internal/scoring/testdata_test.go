package scoring

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

Summary
Backend engineer focused on data platforms.

Experience
Acme Corp, 2019 - 2023
- Led a team of 6 engineers migrating services to Kubernetes
- Reduced infrastructure cost by 30%
- Built Python ETL pipelines feeding SQL dashboards

Education
B.S. Computer Science, 2018

Skills
Python, SQL, Docker, AWS`
